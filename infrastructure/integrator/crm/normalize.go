// Package crm integra o sistema de agendamento do salão e normaliza clientes e
// atendimentos para as estruturas do domínio.
package crm

import (
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/vfg2006/salon-manager-api/infrastructure/integrator/crm/crmdomain"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

var dateLayouts = []string{
	time.DateTime,
	time.RFC3339,
	time.DateOnly,
}

type Normalizer struct {
	region   string
	location *time.Location
}

// NewNormalizer usa UTC quando location é nil
func NewNormalizer(region string, location *time.Location) *Normalizer {
	if location == nil {
		location = time.UTC
	}
	return &Normalizer{region: strings.ToUpper(region), location: location}
}

func (n *Normalizer) Client(c crmdomain.Client) domain.ClientRecord {
	name := strings.TrimSpace(strings.Join([]string{c.Name, c.Surname}, " "))

	return domain.ClientRecord{
		ID:             domain.ClientID(c.ID),
		Name:           name,
		Phone:          n.Phone(c.Phone),
		Email:          strings.TrimSpace(c.Email),
		FirstVisitDate: n.parseTime(c.FirstVisitDate),
		LastVisitDate:  n.parseTime(c.LastVisitDate),
		VisitCount:     c.Visits,
		Spent:          c.Spent,
		SoldAmount:     c.SoldAmount,
		AvgSum:         c.AvgSum,
	}
}

// Record retorna false quando o agendamento não tem data válida
func (n *Normalizer) Record(r crmdomain.Record) (domain.AppointmentRecord, bool) {
	datetime := n.parseTime(r.Datetime)
	if datetime == nil {
		return domain.AppointmentRecord{}, false
	}

	record := domain.AppointmentRecord{
		ID:         domain.RecordID(r.ID),
		StaffID:    r.StaffID,
		Datetime:   *datetime,
		Attendance: domain.Attendance(r.Attendance),
		Confirmed:  r.Confirmed,
		Deleted:    r.Deleted,
		Services:   make([]domain.ServiceLine, 0, len(r.Services)),
	}

	if r.Staff != nil {
		record.StaffName = r.Staff.Name
		if record.StaffID == 0 {
			record.StaffID = r.Staff.ID
		}
	}

	if r.Client != nil {
		record.ClientID = domain.ClientID(r.Client.ID)
		record.ClientName = strings.TrimSpace(r.Client.Name)
		record.ClientPhone = n.Phone(r.Client.Phone)
	}

	for _, service := range r.Services {
		record.Services = append(record.Services, domain.ServiceLine{
			ID:    service.ID,
			Title: service.Title,
			Cost:  service.Cost,
		})
	}

	return record, true
}

// Phone normaliza para E.164; números que não podem ser interpretados são mantidos como vieram
func (n *Normalizer) Phone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	number, err := phonenumbers.Parse(raw, n.region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

func (n *Normalizer) parseTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "0000-00-00") {
		return nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, n.location)
		if err == nil {
			return &parsed
		}
	}

	return nil
}
