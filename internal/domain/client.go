// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type ClientID int64

// ClientRecord é o cliente como chega do CRM de agendamento, já normalizado pelo sync store.
// Campos ausentes ficam nil e recebem defaults documentados no motor de scoring.
type ClientRecord struct {
	ID             ClientID   `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	FirstVisitDate *time.Time `json:"first_visit_date"`
	LastVisitDate  *time.Time `json:"last_visit_date"`
	VisitCount     *int       `json:"visit_count"`
	Spent          *float64   `json:"spent"`
	SoldAmount     *float64   `json:"sold_amount"`
	AvgSum         *float64   `json:"avg_sum"`
}

// Visits retorna a quantidade de visitas, 0 quando ausente
func (c ClientRecord) Visits() int {
	if c.VisitCount == nil || *c.VisitCount < 0 {
		return 0
	}
	return *c.VisitCount
}

// TotalSpent segue a ordem spent -> sold_amount -> 0 e nunca é negativo
func (c ClientRecord) TotalSpent() float64 {
	var total float64
	switch {
	case c.Spent != nil:
		total = *c.Spent
	case c.SoldAmount != nil:
		total = *c.SoldAmount
	}

	if total < 0 {
		return 0
	}
	return total
}

// AverageTicket retorna o ticket médio informado pelo CRM, 0 quando ausente
func (c ClientRecord) AverageTicket() float64 {
	if c.AvgSum == nil || *c.AvgSum < 0 {
		return 0
	}
	return *c.AvgSum
}
