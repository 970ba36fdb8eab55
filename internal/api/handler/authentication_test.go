package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
		expectedToken  string
	}{
		{
			name: "login com sucesso",
			body: `{"email":"ana@salao.com","password":"Segura#2026"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "ana@salao.com", "Segura#2026").Return("token-jwt", nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "token-jwt",
		},
		{
			name:           "json inválido",
			body:           `{"email":`,
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "senha ausente",
			body:           `{"email":"ana@salao.com"}`,
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "senha incorreta",
			body: `{"email":"ana@salao.com","password":"errada"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					LoginUser(gomock.Any(), "ana@salao.com", "errada").
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, "Senha incorreta"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "email desconhecido responde como credencial inválida",
			body: `{"email":"ninguem@salao.com","password":"qualquer"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					LoginUser(gomock.Any(), "ninguem@salao.com", "qualquer").
					Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "usuário desativado",
			body: `{"email":"ana@salao.com","password":"Segura#2026"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 7, "Conta desativada"))
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserDisabled,
		},
		{
			name: "falha no banco",
			body: `{"email":"ana@salao.com","password":"Segura#2026"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(errors.New("conn refused"), apiErrors.ErrDatabaseOperation, ""))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := serve(t, Authentication(service), 0, http.MethodPost, "/v1/login", strings.NewReader(tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedToken, body["token"])
		})
	}
}

func TestGetMe(t *testing.T) {
	t.Run("retorna o perfil do usuário logado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().
			GetUserProfile(gomock.Any(), 7).
			Return(&domain.User{ID: 7, Name: "Ana", Email: "ana@salao.com", RoleID: middleware.RoleManager, Active: true}, nil)

		rec := serve(t, Authentication(service), middleware.RoleManager, http.MethodGet, "/v1/me", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "ana@salao.com", user.Email)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := serve(t, Authentication(service), 0, http.MethodGet, "/v1/me", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
	})

	t.Run("usuário removido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().
			GetUserProfile(gomock.Any(), 7).
			Return(nil, authenticating.NewUserAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, 7, ""))

		rec := serve(t, Authentication(service), middleware.RoleAdmin, http.MethodGet, "/v1/me", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "troca com sucesso",
			body: `{"current_password":"Antiga#2025","new_password":"Nova#Senha2026"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ChangePassword(gomock.Any(), 7, "Antiga#2025", "Nova#Senha2026").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "nova senha ausente",
			body:           `{"current_password":"Antiga#2025"}`,
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "senha fraca",
			body: `{"current_password":"Antiga#2025","new_password":"123"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					ChangePassword(gomock.Any(), 7, gomock.Any(), "123").
					Return(authenticating.NewUserAuthError(authenticating.ErrWeakPassword, apiErrors.ErrWeakPassword, 7, "mínimo de 8 caracteres"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrWeakPassword,
		},
		{
			name: "senha atual incorreta",
			body: `{"current_password":"errada","new_password":"Nova#Senha2026"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					ChangePassword(gomock.Any(), 7, "errada", gomock.Any()).
					Return(authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := serve(t, Authentication(service), middleware.RoleReception, http.MethodPut, "/v1/me/password", strings.NewReader(tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}
