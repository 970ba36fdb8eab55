package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const hoursPerDay = 24

// ExtractMetrics deriva as métricas brutas de um cliente em relação a now.
// Campos ausentes degradam para os defaults documentados; nunca falha.
func ExtractMetrics(client domain.ClientRecord, now time.Time, fallbackMonths int) domain.RawMetrics {
	metrics := domain.RawMetrics{
		TotalSpent: client.TotalSpent(),
		VisitCount: client.Visits(),
	}

	if client.LastVisitDate != nil {
		days := DaysBetween(*client.LastVisitDate, now)
		metrics.DaysSinceLastVisit = &days
	}

	var months *int
	switch {
	case client.FirstVisitDate != nil:
		m := max(1, CalendarMonths(*client.FirstVisitDate, now))
		months = &m
	case metrics.VisitCount > 0:
		m := fallbackMonths
		months = &m
	}
	metrics.MonthsAsClient = months

	if months != nil && *months > 0 {
		perMonth := float64(metrics.VisitCount) / float64(*months)
		metrics.VisitsPerMonth = &perMonth
	}

	return metrics
}

// DaysBetween retorna floor(dias(to - from))
func DaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / hoursPerDay))
}

// CalendarMonths conta os meses completos entre from e to
func CalendarMonths(from, to time.Time) int {
	if from.After(to) {
		return -CalendarMonths(to, from)
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months > 0 && from.AddDate(0, months, 0).After(to) {
		months--
	}
	return months
}
