package crmdomain

type Client struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Surname        string   `json:"surname,omitempty"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Visits         *int     `json:"visits"`
	Spent          *float64 `json:"spent"`
	SoldAmount     *float64 `json:"sold_amount"`
	AvgSum         *float64 `json:"avg_sum"`
	FirstVisitDate string   `json:"first_visit_date,omitempty"`
	LastVisitDate  string   `json:"last_visit_date,omitempty"`
}
