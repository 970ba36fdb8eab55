package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

const (
	testSecret   = "segredo-de-teste"
	testPassword = "Salao@2026"
)

func activeUser(t *testing.T) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           9,
		Name:         "Carla",
		Email:        "carla@salao.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}
}

func assertAuthCode(t *testing.T, err error, expected error, code string) {
	t.Helper()

	assert.ErrorIs(t, err, expected)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, code, authErr.Code)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testSecret)

	user := activeUser(t)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "carla@salao.com").Return(user, nil)
	userRepo.EXPECT().TouchLastLogin(gomock.Any(), 9).Return(errors.New("ignorado"))

	token, err := service.LoginUser(context.Background(), "  Carla@Salao.com ", testPassword)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 9, claims.UserID)
	assert.Equal(t, "carla@salao.com", claims.UserEmail)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestService_LoginUser_Errors(t *testing.T) {
	inactive := func(t *testing.T) *domain.User {
		user := activeUser(t)
		user.Active = false
		return user
	}

	tests := []struct {
		name         string
		email        string
		password     string
		setup        func(t *testing.T, repo *mocks.MockUserRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "dados obrigatórios ausentes",
			setup:        func(*testing.T, *mocks.MockUserRepository) {},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "usuário não encontrado",
			email:    "x@salao.com",
			password: testPassword,
			setup: func(_ *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "x@salao.com").Return(nil, nil)
			},
			expectedErr:  ErrUserNotFound,
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "usuário desativado",
			email:    "carla@salao.com",
			password: testPassword,
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "carla@salao.com").Return(inactive(t), nil)
			},
			expectedErr:  ErrUserDisabled,
			expectedCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "senha incorreta",
			email:    "carla@salao.com",
			password: "errada",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "carla@salao.com").Return(activeUser(t), nil)
			},
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			token, err := NewService(userRepo, testSecret).LoginUser(context.Background(), tt.email, tt.password)

			assert.Empty(t, token)
			assertAuthCode(t, err, tt.expectedErr, tt.expectedCode)
			assert.True(t, IsCredentialsError(err) || errors.Is(err, ErrMissingRequiredData))
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testSecret)
	user := activeUser(t)

	t.Run("token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		token, err := service.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assertAuthCode(t, err, ErrExpiredToken, apiErrors.ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("assinatura de outra chave", func(t *testing.T) {
		other := NewService(nil, "outra-chave")
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assertAuthCode(t, err, ErrInvalidToken, apiErrors.ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assertAuthCode(t, err, ErrInvalidToken, apiErrors.ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testSecret)

	userRepo.EXPECT().GetUserByID(gomock.Any(), 9).Return(activeUser(t), nil)
	userRepo.EXPECT().GetUserByID(gomock.Any(), 10).Return(nil, nil)

	user, err := service.GetUserProfile(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Carla", user.Name)
	assert.Empty(t, user.PasswordHash)

	_, err = service.GetUserProfile(context.Background(), 10)
	assertAuthCode(t, err, ErrUserNotFound, apiErrors.ErrUserNotFound)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := NewService(nil, testSecret)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha forte", password: "Salao@2026", valid: true},
		{name: "curta", password: "Ab1!"},
		{name: "sem maiúscula", password: "salao@2026"},
		{name: "sem minúscula", password: "SALAO@2026"},
		{name: "sem número", password: "Salao@Jardim"},
		{name: "sem caractere especial", password: "Salao2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assertAuthCode(t, err, ErrWeakPassword, apiErrors.ErrWeakPassword)
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	service := NewService(nil, testSecret)

	for _, length := range []int{4, 12, 20} {
		password, err := GenerateStrongPassword(length)
		require.NoError(t, err)

		assert.Len(t, password, max(8, length))
		assert.NoError(t, service.ValidatePasswordStrength(password))
	}
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name         string
		current      string
		newPassword  string
		setup        func(t *testing.T, repo *mocks.MockUserRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:        "senha alterada",
			current:     testPassword,
			newPassword: "Nova#Senha99",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(activeUser(t), nil)
				repo.EXPECT().UpdatePassword(gomock.Any(), 9, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int, hash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Nova#Senha99")))
						return nil
					})
			},
		},
		{
			name:        "senha atual incorreta",
			current:     "errada",
			newPassword: "Nova#Senha99",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(activeUser(t), nil)
			},
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:        "nova senha igual à atual",
			current:     testPassword,
			newPassword: testPassword,
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(activeUser(t), nil)
			},
			expectedErr:  ErrSamePassword,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:        "nova senha fraca",
			current:     testPassword,
			newPassword: "fraca",
			setup: func(t *testing.T, repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(activeUser(t), nil)
			},
			expectedErr:  ErrWeakPassword,
			expectedCode: apiErrors.ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			err := NewService(userRepo, testSecret).ChangePassword(context.Background(), 9, tt.current, tt.newPassword)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assertAuthCode(t, err, tt.expectedErr, tt.expectedCode)
		})
	}
}
