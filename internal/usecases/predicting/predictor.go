package predicting

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

const (
	maxRiskScore = 100

	clientHighRate     = 0.30
	clientModerateRate = 0.15

	clientHighPoints     = 40
	clientModeratePoints = 25
	clientAnyPoints      = 10
	newClientPoints      = 5

	wellAboveAverageFactor = 1.5
	wellAboveAveragePoints = 20
	aboveAveragePoints     = 10

	unconfirmedPoints = 20

	criticalMinScore = 75
	highMinScore     = 50
	mediumMinScore   = 25
)

// Recomendações por nível de risco
const (
	RecommendationPrepayment    = "Solicitar pré-pagamento ou sinal para garantir o horário"
	RecommendationOverbooking   = "Considerar encaixe de outro cliente no mesmo horário"
	RecommendationCallDayBefore = "Ligar para o cliente um dia antes para confirmar"
	RecommendationSMS           = "Enviar SMS de confirmação"
	RecommendationReminder      = "Enviar lembrete um dia antes do atendimento"
)

var recommendationsByLevel = map[domain.RiskLevel][]string{
	domain.RiskLevelCritical: {RecommendationPrepayment, RecommendationOverbooking, RecommendationCallDayBefore},
	domain.RiskLevelHigh:     {RecommendationCallDayBefore, RecommendationSMS},
	domain.RiskLevelMedium:   {RecommendationReminder},
}

// Result é a saída do preditor, ordenada por risco decrescente
type Result struct {
	// AverageNoShowRate é a fração global (0..1) usada como base de comparação
	AverageNoShowRate float64
	Predictions       []domain.NoShowPrediction
}

type Predictor struct{}

func NewPredictor() *Predictor {
	return &Predictor{}
}

// Predict avalia os agendamentos de upcoming dentro de [now, now+daysAhead].
// Filtro por nível e limite são responsabilidade de quem chama.
func (p *Predictor) Predict(past, upcoming []domain.AppointmentRecord, now time.Time, daysAhead int) Result {
	table := BuildHistoricalRateTable(past, now)
	windowEnd := now.AddDate(0, 0, daysAhead)

	predictions := make([]domain.NoShowPrediction, 0, len(upcoming))
	for _, record := range upcoming {
		if record.Deleted || record.IsNoShow() {
			continue
		}
		if record.Datetime.Before(now) || record.Datetime.After(windowEnd) {
			continue
		}

		predictions = append(predictions, p.PredictOne(record, table))
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].RiskScore > predictions[j].RiskScore
	})

	return Result{
		AverageNoShowRate: table.AverageRate(),
		Predictions:       predictions,
	}
}

// PredictOne pontua um agendamento contra uma tabela de histórico já construída
func (p *Predictor) PredictOne(record domain.AppointmentRecord, table *HistoricalRateTable) domain.NoShowPrediction {
	average := table.AverageRate()
	score := 0
	factors := make([]string, 0, 4)

	history, hasHistory := RateBucket{}, false
	if record.HasClient() {
		history, hasHistory = table.Client(record.ClientID)
	}

	if hasHistory && history.Total > 0 {
		rate := history.Rate()
		switch {
		case rate > clientHighRate:
			score += clientHighPoints
			factors = append(factors, fmt.Sprintf("Histórico alto de faltas: cliente faltou %d de %d visitas (%s%%)", history.NoShows, history.Total, percent(rate)))
		case rate > clientModerateRate:
			score += clientModeratePoints
			factors = append(factors, fmt.Sprintf("Histórico moderado de faltas: cliente faltou %d de %d visitas (%s%%)", history.NoShows, history.Total, percent(rate)))
		case rate > 0:
			score += clientAnyPoints
			factors = append(factors, fmt.Sprintf("Cliente já faltou %d de %d visitas (%s%%)", history.NoShows, history.Total, percent(rate)))
		}
	} else {
		score += newClientPoints
		factors = append(factors, "Cliente novo, sem histórico de visitas")
	}

	day := record.Datetime.Weekday()
	if bucket, ok := table.Day(day); ok {
		points, factor := compareToAverage(bucket.Rate(), average, domain.DayName(day))
		score += points
		if factor != "" {
			factors = append(factors, factor)
		}
	}

	slot, inSlot := domain.TimeSlotOf(record.Datetime)
	if inSlot {
		if bucket, ok := table.Slot(slot); ok {
			points, factor := compareToAverage(bucket.Rate(), average, "Horário "+slot.Label())
			score += points
			if factor != "" {
				factors = append(factors, factor)
			}
		}
	}

	if !record.IsConfirmed() {
		score += unconfirmedPoints
		factors = append(factors, "Agendamento não confirmado pelo cliente")
	}

	score = min(score, maxRiskScore)
	level := RiskLevelFor(score)

	prediction := domain.NoShowPrediction{
		RecordID:         record.ID,
		ClientID:         record.ClientID,
		ClientName:       record.ClientName,
		ClientPhone:      record.ClientPhone,
		StaffName:        record.StaffName,
		Datetime:         record.Datetime,
		DayOfWeek:        domain.DayName(day),
		Services:         record.Services,
		TotalCost:        utils.RoundWithTwoDecimalPlace(record.TotalCost()),
		Confirmed:        record.IsConfirmed(),
		ClientVisits:     history.Total,
		ClientNoShows:    history.NoShows,
		ClientNoShowRate: utils.RoundWithOneDecimalPlace(history.Rate() * 100),
		RiskScore:        score,
		RiskLevel:        level,
		RiskFactors:      factors,
		Recommendations:  RecommendationsFor(level),
	}
	if inSlot {
		prediction.TimeSlot = slot.Label()
	}
	if prediction.Services == nil {
		prediction.Services = []domain.ServiceLine{}
	}

	return prediction
}

func compareToAverage(rate, average float64, label string) (int, string) {
	switch {
	case rate > average*wellAboveAverageFactor:
		return wellAboveAveragePoints, fmt.Sprintf("%s com taxa de faltas muito acima da média (%s%% contra %s%%)", label, percent(rate), percent(average))
	case rate > average:
		return aboveAveragePoints, fmt.Sprintf("%s com taxa de faltas acima da média (%s%% contra %s%%)", label, percent(rate), percent(average))
	default:
		return 0, ""
	}
}

// RiskLevelFor faz o bandeamento do risk score
func RiskLevelFor(score int) domain.RiskLevel {
	switch {
	case score >= criticalMinScore:
		return domain.RiskLevelCritical
	case score >= highMinScore:
		return domain.RiskLevelHigh
	case score >= mediumMinScore:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// RecommendationsFor retorna uma cópia da lista fixa do nível; LOW não tem recomendações
func RecommendationsFor(level domain.RiskLevel) []string {
	return append([]string{}, recommendationsByLevel[level]...)
}

func percent(rate float64) string {
	return strconv.FormatFloat(utils.RoundWithOneDecimalPlace(rate*100), 'f', -1, 64)
}
