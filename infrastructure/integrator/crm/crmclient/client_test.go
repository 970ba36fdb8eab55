package crmclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(config.CRM{
		URL:            serverURL + "/api/v1",
		PartnerToken:   "partner",
		UserToken:      "user",
		CompanyID:      123,
		PageSize:       2,
		RequestTimeout: 5 * time.Second,
	})
}

func TestCRMClient_GetClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/clients/123", r.URL.Path)
		assert.Equal(t, "Bearer partner, User user", r.Header.Get("Authorization"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("count"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Ana","phone":"+5511987654321","visits":3,"spent":450.5,"last_visit_date":"2026-10-01 14:30:00"}],"meta":{"total_count":5}}`))
	}))
	defer server.Close()

	clients, err := newTestClient(server.URL).GetClients(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, int64(1), clients[0].ID)
	assert.Equal(t, "Ana", clients[0].Name)
	require.NotNil(t, clients[0].Visits)
	assert.Equal(t, 3, *clients[0].Visits)
	require.NotNil(t, clients[0].Spent)
	assert.Equal(t, 450.5, *clients[0].Spent)
	assert.Nil(t, clients[0].SoldAmount)
	assert.Equal(t, "2026-10-01 14:30:00", clients[0].LastVisitDate)
}

func TestCRMClient_GetRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/records/123", r.URL.Path)
		assert.Equal(t, "2026-10-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-10-31", r.URL.Query().Get("end_date"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))

		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":77,"staff_id":4,"staff":{"id":4,"name":"Joana"},"client":null,"services":[{"id":1,"title":"Corte","cost":80}],"datetime":"2026-10-16T10:00:00-03:00","attendance":-1,"confirmed":1,"deleted":false}],"meta":{"total_count":1}}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).GetRecords(context.Background(), RecordsParams{
		StartDate: "2026-10-01",
		EndDate:   "2026-10-31",
		Page:      1,
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(77), records[0].ID)
	assert.Nil(t, records[0].Client)
	require.NotNil(t, records[0].Staff)
	assert.Equal(t, "Joana", records[0].Staff.Name)
	assert.Equal(t, -1, records[0].Attendance)
	require.Len(t, records[0].Services, 1)
	assert.Equal(t, 80.0, records[0].Services[0].Cost)
}

func TestCRMClient_Errors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "status diferente de 200",
			status:         http.StatusUnauthorized,
			body:           `{"success":false,"data":null,"meta":{"message":"Acesso negado"}}`,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Acesso negado",
		},
		{
			name:           "success false com status 200",
			status:         http.StatusOK,
			body:           `{"success":false,"data":[],"meta":{"message":"Empresa não encontrada"}}`,
			expectedStatus: http.StatusOK,
			expectedMsg:    "Empresa não encontrada",
		},
		{
			name:           "corpo que não é JSON",
			status:         http.StatusBadGateway,
			body:           `<html>bad gateway</html>`,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).GetClients(context.Background(), 1)

			var requestErr *RequestError
			require.True(t, errors.As(err, &requestErr))
			assert.Equal(t, tt.expectedStatus, requestErr.StatusCode)
			assert.Equal(t, tt.expectedMsg, requestErr.Message)
		})
	}
}

func TestCRMClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("a requisição não deveria ser enviada")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).GetClients(ctx, 1)
	assert.Error(t, err)
}
