package crmdomain

type Record struct {
	ID         int64     `json:"id"`
	CompanyID  int64     `json:"company_id"`
	StaffID    int64     `json:"staff_id"`
	Staff      *Staff    `json:"staff"`
	Client     *Customer `json:"client"`
	Services   []Service `json:"services"`
	Datetime   string    `json:"datetime"`
	Attendance int       `json:"attendance"`
	Confirmed  int       `json:"confirmed"`
	Deleted    bool      `json:"deleted"`
}

type Staff struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Customer é o resumo do cliente embutido no agendamento; ausente em agendamentos avulsos
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Service struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Cost  float64 `json:"cost"`
}
