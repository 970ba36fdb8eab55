package segmenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func metrics(id domain.ClientID, daysSinceVisit *int, visits int, avgSum float64) domain.SegmentClientMetrics {
	return domain.SegmentClientMetrics{
		ClientID:       id,
		DaysSinceVisit: daysSinceVisit,
		VisitCount:     visits,
		AvgSum:         avgSum,
	}
}

func days(d int) *int {
	return &d
}

func segmentIDs(segments []domain.Segment) []domain.SegmentID {
	ids := make([]domain.SegmentID, 0, len(segments))
	for _, s := range segments {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestSegmenter_Segment_OnlyNeedDiscount(t *testing.T) {
	clients := []domain.SegmentClientMetrics{metrics(1, days(40), 1, 200)}

	segments := NewSegmenter().Segment(clients, AverageCheck(clients), domain.SegmentFilters{IncludeClients: true})

	require.Len(t, segments, 1)
	assert.Equal(t, domain.SegmentNeedDiscount, segments[0].ID)
	assert.Equal(t, domain.SegmentPriorityHigh, segments[0].Priority)
	assert.Equal(t, 1, segments[0].Count)
	assert.Equal(t, 170.0, segments[0].PotentialRevenue)
	assert.Len(t, segments[0].Clients, 1)
}

func TestSegmenter_Segment_Rules(t *testing.T) {
	tests := []struct {
		name     string
		client   domain.SegmentClientMetrics
		avgCheck float64
		expected []domain.SegmentID
	}{
		{
			name:     "recorrente sumido há 3 semanas",
			client:   metrics(1, days(21), 3, 100),
			avgCheck: 200,
			expected: []domain.SegmentID{domain.SegmentRecoverable7d},
		},
		{
			name:     "60 dias cai em desconto e reativação",
			client:   metrics(1, days(60), 1, 100),
			avgCheck: 200,
			expected: []domain.SegmentID{domain.SegmentNeedDiscount, domain.SegmentUrgentReactivation},
		},
		{
			name:     "91 dias não entra em nenhum segmento",
			client:   metrics(1, days(91), 10, 100),
			avgCheck: 200,
			expected: []domain.SegmentID{},
		},
		{
			name:     "ticket alto frequente e ativo",
			client:   metrics(1, days(10), 5, 300),
			avgCheck: 200,
			expected: []domain.SegmentID{domain.SegmentVIPNoTouch},
		},
		{
			name:     "ticket acima da média vira potencial VIP",
			client:   metrics(1, days(50), 3, 250),
			avgCheck: 200,
			expected: []domain.SegmentID{domain.SegmentNeedDiscount, domain.SegmentPotentialVIP},
		},
		{
			name:     "sem data de visita não entra em regras de recência",
			client:   metrics(1, nil, 8, 500),
			avgCheck: 200,
			expected: []domain.SegmentID{},
		},
		{
			name: "cliente novo",
			client: domain.SegmentClientMetrics{
				ClientID:            1,
				DaysSinceVisit:      days(3),
				DaysSinceFirstVisit: days(3),
				VisitCount:          1,
				AvgSum:              80,
			},
			avgCheck: 200,
			expected: []domain.SegmentID{domain.SegmentNewNeedsAttention},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := NewSegmenter().Segment([]domain.SegmentClientMetrics{tt.client}, tt.avgCheck, domain.SegmentFilters{})
			assert.Equal(t, tt.expected, segmentIDs(segments))
		})
	}
}

func TestSegmenter_Segment_PriorityOrdering(t *testing.T) {
	clients := []domain.SegmentClientMetrics{
		metrics(1, days(10), 6, 400),
		metrics(2, days(25), 3, 100),
		metrics(3, days(40), 3, 160),
		metrics(4, days(75), 1, 100),
		{ClientID: 5, DaysSinceVisit: days(5), DaysSinceFirstVisit: days(5), VisitCount: 1, AvgSum: 100},
	}

	// média = 172
	segments := NewSegmenter().Segment(clients, AverageCheck(clients), domain.SegmentFilters{})

	assert.Equal(t, []domain.SegmentID{
		domain.SegmentRecoverable7d,
		domain.SegmentNeedDiscount,
		domain.SegmentUrgentReactivation,
		domain.SegmentNewNeedsAttention,
		domain.SegmentVIPNoTouch,
	}, segmentIDs(segments))

	for _, segment := range segments {
		assert.Nil(t, segment.Clients)
	}
}

func TestSegmenter_Segment_RevenueAndLimit(t *testing.T) {
	clients := []domain.SegmentClientMetrics{
		metrics(1, days(45), 1, 100),
		metrics(2, days(50), 1, 150.4),
		metrics(3, days(55), 1, 99.9),
	}

	segments := NewSegmenter().Segment(clients, 500, domain.SegmentFilters{Limit: 2, IncludeClients: true})

	require.Len(t, segments, 1)
	assert.Equal(t, 3, segments[0].Count)
	assert.Equal(t, 298.0, segments[0].PotentialRevenue)
	require.Len(t, segments[0].Clients, 2)
	assert.Equal(t, domain.ClientID(1), segments[0].Clients[0].ClientID)
	assert.Equal(t, domain.ClientID(2), segments[0].Clients[1].ClientID)
}

func TestAverageCheck(t *testing.T) {
	assert.Equal(t, 0.0, AverageCheck(nil))
	assert.Equal(t, 150.0, AverageCheck([]domain.SegmentClientMetrics{{AvgSum: 100}, {AvgSum: 200}}))
}

func TestSegmenter_Report(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -40)
	visits := 1
	avg := 200.0

	report := NewSegmenter().Report([]domain.ClientRecord{
		{ID: 9, Name: "Ana", Phone: "+5511999990000", LastVisitDate: &last, VisitCount: &visits, AvgSum: &avg},
	}, now, domain.SegmentFilters{Limit: 10, IncludeClients: true})

	assert.Equal(t, 1, report.TotalClients)
	assert.Equal(t, 200.0, report.AvgCheck)
	require.Len(t, report.Segments, 1)
	assert.Equal(t, domain.SegmentNeedDiscount, report.Segments[0].ID)

	client := report.Segments[0].Clients[0]
	assert.Equal(t, "Ana", client.Name)
	require.NotNil(t, client.DaysSinceVisit)
	assert.Equal(t, 40, *client.DaysSinceVisit)
	assert.Nil(t, client.DaysSinceFirstVisit)
}

func TestEnrichClients_Empty(t *testing.T) {
	enriched := EnrichClients(nil, time.Now())

	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}
