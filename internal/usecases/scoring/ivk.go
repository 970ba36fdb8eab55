package scoring

import (
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

// Scorer calcula o IVK com uma configuração imutável definida na construção
type Scorer struct {
	cfg Config
}

// NewScorer cria um scorer com DefaultConfig e as opções informadas
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config retorna uma cópia da configuração em uso
func (s *Scorer) Config() Config {
	return s.cfg
}

// Score extrai as métricas do cliente e calcula o IVK em relação a now
func (s *Scorer) Score(client domain.ClientRecord, now time.Time) domain.IVKResult {
	metrics := ExtractMetrics(client, now, s.cfg.FallbackMonthsAsClient)
	return s.ScoreMetrics(metrics, client.AverageTicket())
}

// ScoreMetrics calcula o IVK a partir de métricas já extraídas
func (s *Scorer) ScoreMetrics(metrics domain.RawMetrics, averageCheck float64) domain.IVKResult {
	percentages := domain.IVKPercentages{
		Recency:   Percentage(valueOrNaN(metrics.DaysSinceLastVisit), s.cfg.Recency),
		Frequency: Percentage(valueOrNaN(metrics.VisitsPerMonth), s.cfg.Frequency),
		Monetary:  Percentage(metrics.TotalSpent, s.cfg.Monetary),
		Loyalty:   Percentage(valueOrNaN(metrics.MonthsAsClient), s.cfg.Loyalty),
	}

	components := domain.IVKComponents{
		Recency:   WeightedScore(percentages.Recency, s.cfg.ComponentWeight),
		Frequency: WeightedScore(percentages.Frequency, s.cfg.ComponentWeight),
		Monetary:  WeightedScore(percentages.Monetary, s.cfg.ComponentWeight),
		Loyalty:   WeightedScore(percentages.Loyalty, s.cfg.ComponentWeight),
	}

	score := min(maxScore, max(0, components.Sum()))

	months := 0
	if metrics.MonthsAsClient != nil {
		months = *metrics.MonthsAsClient
	}

	return domain.IVKResult{
		Score:       score,
		Components:  components,
		Percentages: roundPercentages(percentages),
		Metrics: domain.IVKMetrics{
			RawMetrics:   presentMetrics(metrics),
			AverageCheck: utils.RoundWithTwoDecimalPlace(averageCheck),
		},
		Tier:           DetermineTier(score, months, s.cfg.Tiers),
		RawPercentages: percentages,
	}
}

// DetermineTier faz o bandeamento do score. Cliente com menos de 1 mês é sempre NEW.
func DetermineTier(score int, monthsAsClient int, cutoffs TierCutoffs) domain.Tier {
	switch {
	case monthsAsClient < 1:
		return domain.TierNew
	case score >= cutoffs.Platinum:
		return domain.TierPlatinum
	case score >= cutoffs.Gold:
		return domain.TierGold
	case score >= cutoffs.Silver:
		return domain.TierSilver
	default:
		return domain.TierBronze
	}
}

func roundPercentages(p domain.IVKPercentages) domain.IVKPercentages {
	return domain.IVKPercentages{
		Recency:   utils.RoundWithOneDecimalPlace(p.Recency),
		Frequency: utils.RoundWithOneDecimalPlace(p.Frequency),
		Monetary:  utils.RoundWithOneDecimalPlace(p.Monetary),
		Loyalty:   utils.RoundWithOneDecimalPlace(p.Loyalty),
	}
}

// presentMetrics arredonda apenas a cópia exibida; o cálculo usa os valores brutos
func presentMetrics(m domain.RawMetrics) domain.RawMetrics {
	out := m
	if m.VisitsPerMonth != nil {
		perMonth := utils.RoundWithTwoDecimalPlace(*m.VisitsPerMonth)
		out.VisitsPerMonth = &perMonth
	}
	out.TotalSpent = utils.RoundWithTwoDecimalPlace(m.TotalSpent)
	return out
}
