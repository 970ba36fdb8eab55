// Package scoring calcula o IVK (Índice de Valor do Cliente), o tier e a classificação
// de status/risco de churn a partir do histórico de visitas de um cliente.
//
// Todas as funções são puras: dependem apenas do ClientRecord recebido e do instante de
// referência injetado, sem leituras de relógio, cache ou escrita.
package scoring

// Ladder é a escada de quatro limiares usada na interpolação de um componente.
// Com LowerIsBetter os valores crescem de Excellent para Poor (ex.: dias sem visita).
type Ladder struct {
	Poor          float64
	Medium        float64
	Good          float64
	Excellent     float64
	LowerIsBetter bool
}

// TierCutoffs são as notas mínimas de cada tier
type TierCutoffs struct {
	Platinum int
	Gold     int
	Silver   int
}

// Config é o conjunto imutável de pesos e limiares do scorer
type Config struct {
	Recency   Ladder
	Frequency Ladder
	Monetary  Ladder
	Loyalty   Ladder

	// ComponentWeight é o peso máximo de cada um dos quatro componentes
	ComponentWeight float64

	// FallbackMonthsAsClient é o tempo de casa assumido quando first_visit_date não existe
	// mas o cliente já tem visitas. Regra de negócio, não estimativa.
	FallbackMonthsAsClient int

	Tiers TierCutoffs
}

const (
	defaultComponentWeight = 25
	defaultFallbackMonths  = 6
	maxScore               = 100
)

// DefaultConfig retorna os limiares de produção
func DefaultConfig() Config {
	return Config{
		Recency:   Ladder{Poor: 90, Medium: 60, Good: 30, Excellent: 14, LowerIsBetter: true},
		Frequency: Ladder{Poor: 0.25, Medium: 0.5, Good: 1.0, Excellent: 2.0},
		Monetary:  Ladder{Poor: 5000, Medium: 20000, Good: 50000, Excellent: 100000},
		Loyalty:   Ladder{Poor: 3, Medium: 6, Good: 12, Excellent: 24},

		ComponentWeight:        defaultComponentWeight,
		FallbackMonthsAsClient: defaultFallbackMonths,

		Tiers: TierCutoffs{Platinum: 85, Gold: 70, Silver: 50},
	}
}

// Option aplica uma opção de configuração ao Scorer
type Option func(*Scorer)

// WithConfig substitui a configuração inteira
func WithConfig(cfg Config) Option {
	return func(s *Scorer) {
		s.cfg = cfg
	}
}

// WithRecencyLadder troca apenas os limiares de recência
func WithRecencyLadder(ladder Ladder) Option {
	return func(s *Scorer) {
		s.cfg.Recency = ladder
	}
}
