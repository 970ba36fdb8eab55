package segmenting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/scoring"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

var priorityRank = map[domain.SegmentPriority]int{
	domain.SegmentPriorityHigh:   0,
	domain.SegmentPriorityMedium: 1,
	domain.SegmentPriorityLow:    2,
}

type Segmenter struct {
	rules []Rule
}

// NewSegmenter usa DefaultRules quando nenhuma regra é informada
func NewSegmenter(rules ...Rule) *Segmenter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	ordered := append([]Rule{}, rules...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityRank[ordered[i].Priority] < priorityRank[ordered[j].Priority]
	})

	return &Segmenter{rules: ordered}
}

// EnrichClients calcula as métricas de segmentação de cada cliente em relação a now
func EnrichClients(clients []domain.ClientRecord, now time.Time) []domain.SegmentClientMetrics {
	enriched := make([]domain.SegmentClientMetrics, 0, len(clients))
	for _, client := range clients {
		metrics := domain.SegmentClientMetrics{
			ClientID:   client.ID,
			Name:       client.Name,
			Phone:      client.Phone,
			VisitCount: client.Visits(),
			AvgSum:     client.AverageTicket(),
		}

		if client.LastVisitDate != nil {
			days := scoring.DaysBetween(*client.LastVisitDate, now)
			metrics.DaysSinceVisit = &days
		}
		if client.FirstVisitDate != nil {
			days := scoring.DaysBetween(*client.FirstVisitDate, now)
			metrics.DaysSinceFirstVisit = &days
		}

		enriched = append(enriched, metrics)
	}
	return enriched
}

// AverageCheck é a média de avg_sum; o denominador nunca é menor que 1
func AverageCheck(clients []domain.SegmentClientMetrics) float64 {
	var sum float64
	for _, client := range clients {
		sum += client.AvgSum
	}
	return sum / float64(max(1, len(clients)))
}

// Segment aplica as regras e devolve apenas segmentos com ao menos um cliente
func (s *Segmenter) Segment(clients []domain.SegmentClientMetrics, avgCheck float64, filters domain.SegmentFilters) []domain.Segment {
	segments := make([]domain.Segment, 0, len(s.rules))

	for _, rule := range s.rules {
		members := make([]domain.SegmentClientMetrics, 0)
		var revenueBase float64

		for _, client := range clients {
			if rule.Match(client, avgCheck) {
				members = append(members, client)
				revenueBase += client.AvgSum
			}
		}

		if len(members) == 0 {
			continue
		}

		segment := domain.Segment{
			ID:               rule.ID,
			Name:             rule.Name,
			Description:      rule.Description,
			MessageTemplate:  rule.MessageTemplate,
			Priority:         rule.Priority,
			Count:            len(members),
			PotentialRevenue: math.Round(revenueBase * rule.RevenueMultiplier),
		}

		if filters.IncludeClients {
			if filters.Limit > 0 && len(members) > filters.Limit {
				members = members[:filters.Limit]
			}
			segment.Clients = members
		}

		segments = append(segments, segment)
	}

	return segments
}

// Report enriquece os clientes, calcula o ticket médio global e segmenta
func (s *Segmenter) Report(clients []domain.ClientRecord, now time.Time, filters domain.SegmentFilters) domain.SegmentsReport {
	enriched := EnrichClients(clients, now)
	avgCheck := AverageCheck(enriched)

	return domain.SegmentsReport{
		TotalClients: len(enriched),
		AvgCheck:     utils.RoundWithTwoDecimalPlace(avgCheck),
		Segments:     s.Segment(enriched, avgCheck, filters),
	}
}
