package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

type ClientScoresQuery struct {
	Tier   string `mapstructure:"tier" validate:"omitempty,oneof=NEW BRONZE SILVER GOLD PLATINUM"`
	Status string `mapstructure:"status" validate:"omitempty,oneof=VIP REGULAR PROBLEM LOST"`
	Limit  int    `mapstructure:"limit" validate:"omitempty,min=1"`
}

type NoShowRiskQuery struct {
	DaysAhead int    `mapstructure:"days_ahead" validate:"omitempty,min=1,max=30"`
	Limit     int    `mapstructure:"limit" validate:"omitempty,min=1"`
	RiskLevel string `mapstructure:"risk_level" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
}

type SegmentsQuery struct {
	Limit          int  `mapstructure:"limit" validate:"omitempty,min=1"`
	IncludeClients bool `mapstructure:"include_clients"`
}

func ListClientScores(service insighting.Insighter, cfg config.Insights) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var query ClientScoresQuery
		if !parseQuery(w, r, &query) || !validateLimit(w, query.Limit, cfg.MaxLimit) {
			return
		}

		response, err := service.ListClientScores(r.Context(), domain.ClientScoreFilters{
			Tier:   domain.Tier(query.Tier),
			Status: domain.ClientStatus(query.Status),
			Limit:  query.Limit,
		})
		if err != nil {
			writeInsightError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"clients": response.Total,
		}).Info("insights: scores de clientes calculados")

		if err := writeJSON(w, http.StatusOK, response); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
		}
	})
}

func GetClientScore(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		score, err := service.GetClientScore(r.Context(), domain.ClientID(id))
		if err != nil {
			writeInsightError(w, logger.WithField("client_id", id), err)
			return
		}

		if err := writeJSON(w, http.StatusOK, score); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
		}
	})
}

func GetNoShowRisk(service insighting.Insighter, cfg config.Insights) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var query NoShowRiskQuery
		if !parseQuery(w, r, &query) || !validateLimit(w, query.Limit, cfg.MaxLimit) {
			return
		}

		filters := domain.NoShowFilters{
			DaysAhead: query.DaysAhead,
			Limit:     query.Limit,
		}
		if query.RiskLevel != "" {
			level, _ := domain.ParseRiskLevel(query.RiskLevel)
			filters.RiskLevel = &level
		}

		report, err := service.PredictNoShows(r.Context(), filters)
		if err != nil {
			writeInsightError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"records":  report.Summary.Total,
			"critical": report.Summary.Critical,
		}).Info("insights: previsão de faltas calculada")

		if err := writeJSON(w, http.StatusOK, report); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
		}
	})
}

func GetSegments(service insighting.Insighter, cfg config.Insights) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var query SegmentsQuery
		if !parseQuery(w, r, &query) || !validateLimit(w, query.Limit, cfg.MaxLimit) {
			return
		}

		report, err := service.GetSegments(r.Context(), domain.SegmentFilters{
			Limit:          query.Limit,
			IncludeClients: query.IncludeClients,
		})
		if err != nil {
			writeInsightError(w, logger, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, report); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
		}
	})
}

func writeInsightError(w http.ResponseWriter, logger log.Logger, err error) {
	var insightErr *insighting.InsightError
	if errors.As(err, &insightErr) {
		if errors.Is(err, insighting.ErrClientNotFound) {
			logger.Warn("insights: cliente não encontrado")
			apiErrors.WriteError(w, insightErr.Code, "Cliente não encontrado", nil)
			return
		}

		logger.WithError(err).Error("insights: falha ao consultar o snapshot do CRM")
		apiErrors.WriteError(w, apiErrors.ErrSnapshotUnavailable, "Snapshot do CRM indisponível", nil)
		return
	}

	logger.WithError(err).Error("insights: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao calcular insights", nil)
}
