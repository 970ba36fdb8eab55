package domain

import "time"

type RecordID int64

// Attendance segue a codificação do CRM de agendamento
type Attendance int

const (
	AttendanceNoShow   Attendance = -1
	AttendanceUnknown  Attendance = 0
	AttendanceAttended Attendance = 1
	AttendanceAwaiting Attendance = 2
)

type ServiceLine struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Cost  float64 `json:"cost"`
}

type AppointmentRecord struct {
	ID          RecordID      `json:"id"`
	ClientID    ClientID      `json:"client_id"`
	ClientName  string        `json:"client_name"`
	ClientPhone string        `json:"client_phone"`
	StaffID     int64         `json:"staff_id"`
	StaffName   string        `json:"staff_name"`
	Datetime    time.Time     `json:"datetime"`
	Attendance  Attendance    `json:"attendance"`
	Confirmed   int           `json:"confirmed"`
	Deleted     bool          `json:"deleted"`
	Services    []ServiceLine `json:"services"`
}

func (a AppointmentRecord) IsNoShow() bool {
	return a.Attendance == AttendanceNoShow
}

func (a AppointmentRecord) IsConfirmed() bool {
	return a.Confirmed == 1
}

// HasClient indica se o agendamento está vinculado a um cliente cadastrado
func (a AppointmentRecord) HasClient() bool {
	return a.ClientID != 0
}

func (a AppointmentRecord) TotalCost() float64 {
	var total float64
	for _, service := range a.Services {
		total += service.Cost
	}
	return total
}
