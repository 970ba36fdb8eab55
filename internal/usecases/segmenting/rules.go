// Package segmenting agrupa clientes em segmentos de ação para campanhas de relacionamento.
// Os segmentos não são uma partição: um cliente pode aparecer em vários.
package segmenting

import "github.com/vfg2006/salon-manager-api/internal/domain"

const vipTicketFactor = 1.5

// Rule descreve um segmento e o predicado que decide a participação de um cliente
type Rule struct {
	ID                domain.SegmentID
	Name              string
	Description       string
	MessageTemplate   string
	Priority          domain.SegmentPriority
	RevenueMultiplier float64
	Match             func(client domain.SegmentClientMetrics, avgCheck float64) bool
}

// DefaultRules retorna as regras na ordem de desempate dentro de cada prioridade
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:                domain.SegmentRecoverable7d,
			Name:              "Recuperáveis em 7 dias",
			Description:       "Clientes recorrentes que não voltam há 3 a 5 semanas",
			MessageTemplate:   "Olá {name}! Sentimos sua falta. Que tal agendar seu próximo horário esta semana?",
			Priority:          domain.SegmentPriorityHigh,
			RevenueMultiplier: 1.0,
			Match: func(c domain.SegmentClientMetrics, _ float64) bool {
				return inRange(c.DaysSinceVisit, 21, 35) && c.VisitCount >= 3
			},
		},
		{
			ID:                domain.SegmentNeedDiscount,
			Name:              "Precisam de desconto",
			Description:       "Clientes sem visita entre 36 e 60 dias",
			MessageTemplate:   "Olá {name}! Preparamos um desconto especial para o seu retorno.",
			Priority:          domain.SegmentPriorityHigh,
			RevenueMultiplier: 0.85,
			Match: func(c domain.SegmentClientMetrics, _ float64) bool {
				return inRange(c.DaysSinceVisit, 36, 60)
			},
		},
		{
			ID:                domain.SegmentUrgentReactivation,
			Name:              "Reativação urgente",
			Description:       "Clientes sem visita entre 60 e 90 dias, prestes a serem perdidos",
			MessageTemplate:   "Olá {name}! Faz tempo que não te vemos. Volte com uma condição exclusiva.",
			Priority:          domain.SegmentPriorityHigh,
			RevenueMultiplier: 0.70,
			Match: func(c domain.SegmentClientMetrics, _ float64) bool {
				return inRange(c.DaysSinceVisit, 60, 90)
			},
		},
		{
			ID:                domain.SegmentVIPNoTouch,
			Name:              "VIP, não incomodar",
			Description:       "Clientes de ticket alto e frequentes que continuam ativos",
			MessageTemplate:   "Olá {name}! Obrigado pela preferência de sempre.",
			Priority:          domain.SegmentPriorityLow,
			RevenueMultiplier: 1.0,
			Match: func(c domain.SegmentClientMetrics, avgCheck float64) bool {
				return c.AvgSum >= vipTicketFactor*avgCheck && c.VisitCount >= 5 && atMost(c.DaysSinceVisit, 45)
			},
		},
		{
			ID:                domain.SegmentNewNeedsAttention,
			Name:              "Novos precisando de atenção",
			Description:       "Clientes com primeira visita nos últimos 30 dias e no máximo 2 visitas",
			MessageTemplate:   "Olá {name}! Como foi sua primeira experiência conosco? Esperamos você de volta.",
			Priority:          domain.SegmentPriorityMedium,
			RevenueMultiplier: 12,
			Match: func(c domain.SegmentClientMetrics, _ float64) bool {
				return c.DaysSinceFirstVisit != nil && *c.DaysSinceFirstVisit > 0 && *c.DaysSinceFirstVisit <= 30 && c.VisitCount <= 2
			},
		},
		{
			ID:                domain.SegmentPotentialVIP,
			Name:              "Potenciais VIP",
			Description:       "Clientes acima do ticket médio que podem subir de nível",
			MessageTemplate:   "Olá {name}! Temos novidades pensadas para você no seu próximo atendimento.",
			Priority:          domain.SegmentPriorityMedium,
			RevenueMultiplier: 1.2,
			Match: func(c domain.SegmentClientMetrics, avgCheck float64) bool {
				return c.AvgSum >= avgCheck && c.AvgSum < vipTicketFactor*avgCheck && c.VisitCount >= 3 && atMost(c.DaysSinceVisit, 60)
			},
		},
	}
}

// inRange considera dias desconhecidos como fora de qualquer intervalo
func inRange(days *int, from, to int) bool {
	return days != nil && *days >= from && *days <= to
}

func atMost(days *int, limit int) bool {
	return days != nil && *days <= limit
}
