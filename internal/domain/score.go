package domain

type Tier string

const (
	TierNew      Tier = "NEW"
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

type ClientStatus string

const (
	ClientStatusVIP     ClientStatus = "VIP"
	ClientStatusRegular ClientStatus = "REGULAR"
	ClientStatusProblem ClientStatus = "PROBLEM"
	ClientStatusLost    ClientStatus = "LOST"
)

// RiskLevel é usado tanto para risco de churn do cliente quanto para risco de falta de um agendamento
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

var riskLevels = []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical}

// ParseRiskLevel valida um nível de risco recebido de fora
func ParseRiskLevel(value string) (RiskLevel, bool) {
	for _, level := range riskLevels {
		if string(level) == value {
			return level, true
		}
	}
	return "", false
}

// RawMetrics são as métricas comportamentais derivadas de um cliente.
// Ponteiros nil significam "desconhecido", nunca zero.
type RawMetrics struct {
	DaysSinceLastVisit *int     `json:"days_since_last_visit"`
	MonthsAsClient     *int     `json:"months_as_client"`
	VisitsPerMonth     *float64 `json:"visits_per_month"`
	TotalSpent         float64  `json:"total_spent"`
	VisitCount         int      `json:"visit_count"`
}

type IVKComponents struct {
	Recency   int `json:"recency"`
	Frequency int `json:"frequency"`
	Monetary  int `json:"monetary"`
	Loyalty   int `json:"loyalty"`
}

func (c IVKComponents) Sum() int {
	return c.Recency + c.Frequency + c.Monetary + c.Loyalty
}

type IVKPercentages struct {
	Recency   float64 `json:"recency"`
	Frequency float64 `json:"frequency"`
	Monetary  float64 `json:"monetary"`
	Loyalty   float64 `json:"loyalty"`
}

type IVKMetrics struct {
	RawMetrics
	AverageCheck float64 `json:"avg_check"`
}

// IVKResult é o Índice de Valor do Cliente, recalculado a cada chamada e nunca persistido
type IVKResult struct {
	Score       int            `json:"score"`
	Components  IVKComponents  `json:"components"`
	Percentages IVKPercentages `json:"percentages"`
	Metrics     IVKMetrics     `json:"metrics"`
	Tier        Tier           `json:"tier"`

	// RawPercentages são os percentuais sem arredondamento, usados pelas regras de recomendação
	RawPercentages IVKPercentages `json:"-"`
}

type RiskAssessment struct {
	Status    ClientStatus `json:"status"`
	RiskLevel RiskLevel    `json:"risk_level"`
}

type ClientScore struct {
	ClientID        ClientID     `json:"client_id"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	IVK             IVKResult    `json:"ivk"`
	Status          ClientStatus `json:"status"`
	RiskLevel       RiskLevel    `json:"risk_level"`
	Recommendations []string     `json:"recommendations"`
}

type ClientScoreFilters struct {
	Tier   Tier
	Status ClientStatus
	Limit  int
}

type ClientScoresResponse struct {
	Total         int                  `json:"total"`
	TierSummary   map[Tier]int         `json:"tier_summary"`
	StatusSummary map[ClientStatus]int `json:"status_summary"`
	Clients       []ClientScore        `json:"clients"`
}
