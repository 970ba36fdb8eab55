package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

type fakeCRM struct {
	connected bool
	err       error
}

func (f fakeCRM) CheckConnection(context.Context) (bool, error) {
	return f.connected, f.err
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name             string
		database         Pinger
		crm              ConnectionChecker
		expectedStatus   int
		expectedDatabase string
		expectedCRM      string
	}{
		{
			name:             "banco e CRM disponíveis",
			database:         fakePinger{},
			crm:              fakeCRM{connected: true},
			expectedStatus:   http.StatusOK,
			expectedDatabase: "ok",
			expectedCRM:      "ok",
		},
		{
			name:             "banco fora do ar",
			database:         fakePinger{err: errors.New("connection refused")},
			crm:              fakeCRM{connected: true},
			expectedStatus:   http.StatusServiceUnavailable,
			expectedDatabase: "unavailable",
			expectedCRM:      "ok",
		},
		{
			name:             "CRM fora do ar não derruba o healthcheck",
			database:         fakePinger{},
			crm:              fakeCRM{err: errors.New("timeout")},
			expectedStatus:   http.StatusOK,
			expectedDatabase: "ok",
			expectedCRM:      "unavailable",
		},
		{
			name:             "CRM sem conexão",
			database:         fakePinger{},
			crm:              fakeCRM{},
			expectedStatus:   http.StatusOK,
			expectedDatabase: "ok",
			expectedCRM:      "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Healthcheck(tt.database, tt.crm), 0, http.MethodGet, "/healthcheck", nil)

			require.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedDatabase, body["database"])
			assert.Equal(t, tt.expectedCRM, body["crm"])
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	rec := serve(t, Healthcheck(fakePinger{}, nil), 0, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salon_crm_sync_duration_seconds")
}
