package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func TestExtractMetrics(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		client   domain.ClientRecord
		validate func(t *testing.T, m domain.RawMetrics)
	}{
		{
			name: "cliente completo",
			client: domain.ClientRecord{
				FirstVisitDate: timePtr(time.Date(2024, 10, 14, 12, 0, 0, 0, time.UTC)),
				LastVisitDate:  timePtr(now.AddDate(0, 0, -10)),
				VisitCount:     intPtr(10),
				Spent:          floatPtr(120000),
			},
			validate: func(t *testing.T, m domain.RawMetrics) {
				require.NotNil(t, m.DaysSinceLastVisit)
				require.NotNil(t, m.MonthsAsClient)
				require.NotNil(t, m.VisitsPerMonth)
				assert.Equal(t, 10, *m.DaysSinceLastVisit)
				assert.Equal(t, 24, *m.MonthsAsClient)
				assert.InDelta(t, 10.0/24.0, *m.VisitsPerMonth, 0.0001)
				assert.Equal(t, 120000.0, m.TotalSpent)
				assert.Equal(t, 10, m.VisitCount)
			},
		},
		{
			name:   "cliente sem nenhum dado",
			client: domain.ClientRecord{},
			validate: func(t *testing.T, m domain.RawMetrics) {
				assert.Nil(t, m.DaysSinceLastVisit)
				assert.Nil(t, m.MonthsAsClient)
				assert.Nil(t, m.VisitsPerMonth)
				assert.Equal(t, 0.0, m.TotalSpent)
				assert.Equal(t, 0, m.VisitCount)
			},
		},
		{
			name: "sem primeira visita mas com visitas usa 6 meses",
			client: domain.ClientRecord{
				VisitCount: intPtr(3),
			},
			validate: func(t *testing.T, m domain.RawMetrics) {
				require.NotNil(t, m.MonthsAsClient)
				require.NotNil(t, m.VisitsPerMonth)
				assert.Equal(t, 6, *m.MonthsAsClient)
				assert.InDelta(t, 0.5, *m.VisitsPerMonth, 0.0001)
			},
		},
		{
			name: "primeira visita neste mês conta como 1 mês",
			client: domain.ClientRecord{
				FirstVisitDate: timePtr(now.AddDate(0, 0, -5)),
				VisitCount:     intPtr(1),
			},
			validate: func(t *testing.T, m domain.RawMetrics) {
				require.NotNil(t, m.MonthsAsClient)
				assert.Equal(t, 1, *m.MonthsAsClient)
			},
		},
		{
			name: "sold_amount é usado quando spent não existe",
			client: domain.ClientRecord{
				SoldAmount: floatPtr(850.5),
			},
			validate: func(t *testing.T, m domain.RawMetrics) {
				assert.Equal(t, 850.5, m.TotalSpent)
			},
		},
		{
			name: "gasto negativo é tratado como zero",
			client: domain.ClientRecord{
				Spent: floatPtr(-30),
			},
			validate: func(t *testing.T, m domain.RawMetrics) {
				assert.Equal(t, 0.0, m.TotalSpent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ExtractMetrics(tt.client, now, defaultFallbackMonths))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysBetween(now.Add(-25*time.Hour), now))
	assert.Equal(t, -1, DaysBetween(now.Add(2*time.Hour), now))
}

func TestCalendarMonths(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "dois anos exatos",
			from:     time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
			expected: 24,
		},
		{
			name:     "mês ainda não completo",
			from:     time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "virada de ano",
			from:     time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "datas invertidas",
			from:     time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
			expected: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalendarMonths(tt.from, tt.to))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
