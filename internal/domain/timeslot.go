package domain

import "time"

// TimeSlot é uma das quatro janelas fixas do dia usadas para agrupar o histórico de faltas.
// Esta é a única definição de faixa horária e dia da semana do sistema.
type TimeSlot int

const (
	TimeSlotMorning TimeSlot = iota
	TimeSlotMidday
	TimeSlotAfternoon
	TimeSlotEvening
)

type timeSlotWindow struct {
	slot      TimeSlot
	startHour int
	endHour   int
	label     string
}

// Janelas semiabertas [início, fim)
var timeSlotWindows = []timeSlotWindow{
	{slot: TimeSlotMorning, startHour: 9, endHour: 11, label: "09:00-11:00"},
	{slot: TimeSlotMidday, startHour: 11, endHour: 14, label: "11:00-14:00"},
	{slot: TimeSlotAfternoon, startHour: 14, endHour: 17, label: "14:00-17:00"},
	{slot: TimeSlotEvening, startHour: 17, endHour: 21, label: "17:00-21:00"},
}

var dayNames = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// TimeSlotOf retorna a faixa horária do instante, ou false quando fica fora do expediente
func TimeSlotOf(t time.Time) (TimeSlot, bool) {
	hour := t.Hour()
	for _, window := range timeSlotWindows {
		if hour >= window.startHour && hour < window.endHour {
			return window.slot, true
		}
	}
	return 0, false
}

func (s TimeSlot) Label() string {
	for _, window := range timeSlotWindows {
		if window.slot == s {
			return window.label
		}
	}
	return ""
}

func (s TimeSlot) String() string {
	return s.Label()
}

// DayName retorna o nome do dia da semana em português
func DayName(day time.Weekday) string {
	return dayNames[day]
}
