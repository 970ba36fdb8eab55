package insighting

import (
	"context"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Insighter expõe os motores de score, faltas e segmentação sobre o snapshot do CRM
type Insighter interface {
	// GetClientScore calcula o IVK, status, risco e recomendações de um cliente
	GetClientScore(ctx context.Context, clientID domain.ClientID) (*domain.ClientScore, error)

	// ListClientScores calcula o IVK de todos os clientes e aplica os filtros
	ListClientScores(ctx context.Context, filters domain.ClientScoreFilters) (*domain.ClientScoresResponse, error)

	// PredictNoShows estima o risco de falta dos próximos agendamentos
	PredictNoShows(ctx context.Context, filters domain.NoShowFilters) (*domain.NoShowReport, error)

	// GetSegments agrupa os clientes nos segmentos de marketing
	GetSegments(ctx context.Context, filters domain.SegmentFilters) (*domain.SegmentsReport, error)
}
