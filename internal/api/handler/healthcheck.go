package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) (bool, error)
}

// HealthcheckHandler responde 503 quando o banco do snapshot não responde.
// CRM fora do ar só aparece no corpo: as leituras são servidas pelo snapshot.
func HealthcheckHandler(database Pinger, crm ConnectionChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}

		if database != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := database.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("error pinging database on healthcheck")
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body["database"] = "unavailable"
			}
		}

		if crm != nil {
			body["crm"] = crmStatus(r.Context(), crm)
		}

		if err := writeJSON(w, status, body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

func crmStatus(ctx context.Context, crm ConnectionChecker) string {
	ctx, cancel := context.WithTimeout(ctx, healthcheckTimeout)
	defer cancel()

	ok, err := crm.CheckConnection(ctx)
	if err != nil {
		logrus.WithError(err).Warn("error checking crm connection on healthcheck")
	}
	if err != nil || !ok {
		return "unavailable"
	}
	return "ok"
}
