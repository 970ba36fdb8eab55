package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
		expectedCalled bool
	}{
		{
			name:           "rota pública dispensa token",
			path:           "/metrics",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
		{
			name:           "sem header Authorization",
			path:           "/v1/clients/scores",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header sem Bearer",
			path:           "/v1/clients/scores",
			header:         "Basic abc",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/clients/scores",
			header: "Bearer expirado",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expirado").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			path:   "/v1/clients/scores",
			header: "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 1, UserRoleID: RoleAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			called := false
			handler := AuthMiddleware(auth)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedCalled, called)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{
			name:           "sem usuário no contexto",
			middleware:     AllRoles(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "recepção acessa rota de todos os perfis",
			claims:         &domain.Claims{UserID: 3, UserRoleID: RoleReception},
			middleware:     AllRoles(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "recepção bloqueada em rota de gestão",
			claims:         &domain.Claims{UserID: 3, UserRoleID: RoleReception},
			middleware:     AdminOrManager(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "gerente bloqueado em rota de administrador",
			claims:         &domain.Claims{UserID: 2, UserRoleID: RoleManager},
			middleware:     AdminOnly(),
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := tt.middleware(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/v1/clients/segments", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}
