package scoring

import (
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	lostAfterDays         = 90
	vipMaxDays            = 45
	problemAfterDays      = 60
	problemMaxScore       = 25
	criticalMinScore      = 50
	highRiskAfterDays     = 60
	mediumRiskAfterDays   = 30
	weakComponentPct      = 50
	frequencyMinTenure    = 3
	reactivationAfterDays = 60
	reminderAfterDays     = 30
)

// Textos de recomendação, na ordem fixa em que podem aparecer
const (
	RecommendationReactivation = "Cliente sem visitas há mais de 60 dias: enviar oferta de reativação com desconto"
	RecommendationReminder     = "Cliente sem visitas há mais de 30 dias: enviar lembrete personalizado para reagendar"
	RecommendationFrequency    = "Baixa frequência de visitas: oferecer pacote de serviços ou plano recorrente"
	RecommendationMonetary     = "Ticket abaixo do esperado: sugerir serviços complementares no próximo atendimento"
	RecommendationVIP          = "Cliente VIP: manter atendimento prioritário e benefícios exclusivos"
	RecommendationNewClient    = "Cliente novo: acompanhar a primeira experiência e convidar para o retorno"
)

// AssessRisk deriva status e nível de risco de churn de um IVK
func AssessRisk(ivk domain.IVKResult) domain.RiskAssessment {
	return domain.RiskAssessment{
		Status:    DetermineStatus(ivk),
		RiskLevel: DetermineRiskLevel(ivk),
	}
}

// DetermineRiskLevel: CRITICAL precisa ser avaliado antes de HIGH
func DetermineRiskLevel(ivk domain.IVKResult) domain.RiskLevel {
	daysPtr := ivk.Metrics.DaysSinceLastVisit
	if daysPtr == nil {
		return domain.RiskLevelLow
	}

	days := *daysPtr
	switch {
	case ivk.Score > criticalMinScore && days > highRiskAfterDays:
		return domain.RiskLevelCritical
	case days > highRiskAfterDays:
		return domain.RiskLevelHigh
	case days > mediumRiskAfterDays:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// DetermineStatus: LOST tem precedência sobre qualquer outro status
func DetermineStatus(ivk domain.IVKResult) domain.ClientStatus {
	daysPtr := ivk.Metrics.DaysSinceLastVisit

	if daysPtr != nil && *daysPtr > lostAfterDays {
		return domain.ClientStatusLost
	}

	if isVIPTier(ivk.Tier) && (daysPtr == nil || *daysPtr <= vipMaxDays) {
		return domain.ClientStatusVIP
	}

	if ivk.Score < problemMaxScore || (daysPtr != nil && *daysPtr > problemAfterDays) {
		return domain.ClientStatusProblem
	}

	return domain.ClientStatusRegular
}

// Recommendations monta a lista de ações na ordem: recência, frequência, ticket, VIP, novo
func Recommendations(ivk domain.IVKResult) []string {
	recommendations := make([]string, 0)
	metrics := ivk.Metrics

	if ivk.RawPercentages.Recency < weakComponentPct && metrics.DaysSinceLastVisit != nil {
		switch days := *metrics.DaysSinceLastVisit; {
		case days > reactivationAfterDays:
			recommendations = append(recommendations, RecommendationReactivation)
		case days > reminderAfterDays:
			recommendations = append(recommendations, RecommendationReminder)
		}
	}

	if ivk.RawPercentages.Frequency < weakComponentPct && metrics.MonthsAsClient != nil && *metrics.MonthsAsClient > frequencyMinTenure {
		recommendations = append(recommendations, RecommendationFrequency)
	}

	if ivk.RawPercentages.Monetary < weakComponentPct && metrics.TotalSpent > 0 {
		recommendations = append(recommendations, RecommendationMonetary)
	}

	if isVIPTier(ivk.Tier) {
		recommendations = append(recommendations, RecommendationVIP)
	}

	if ivk.Tier == domain.TierNew {
		recommendations = append(recommendations, RecommendationNewClient)
	}

	return recommendations
}

func isVIPTier(tier domain.Tier) bool {
	return tier == domain.TierPlatinum || tier == domain.TierGold
}
