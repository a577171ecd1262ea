package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupAuthService() (*AuthService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, "test-secret", time.Hour, testLogger())
	return service, userRepo
}

func analystUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Username:     "analyst",
		Email:        "analyst@example.com",
		Role:         models.RoleAnalyst,
		PasswordHash: string(hash),
		Enabled:      true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo := setupAuthService()
	ctx := context.Background()
	user := analystUser(t, "password123")

	userRepo.On("GetByUsername", ctx, "analyst").Return(user, nil)

	resp, err := service.Login(ctx, models.LoginRequest{Username: "analyst", Password: "password123"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := service.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "analyst", claims.Username)
	assert.Equal(t, models.RoleAnalyst, claims.Role)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		service, userRepo := setupAuthService()
		userRepo.On("GetByUsername", ctx, "analyst").Return(analystUser(t, "password123"), nil)

		resp, err := service.Login(ctx, models.LoginRequest{Username: "analyst", Password: "nope"})

		assert.Nil(t, resp)
		assert.Equal(t, custom_err.ErrInvalidCredentials, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, userRepo := setupAuthService()
		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, custom_err.ErrNotFound)

		resp, err := service.Login(ctx, models.LoginRequest{Username: "ghost", Password: "password123"})

		assert.Nil(t, resp)
		assert.Equal(t, custom_err.ErrInvalidCredentials, err)
	})

	t.Run("disabled account", func(t *testing.T) {
		service, userRepo := setupAuthService()
		user := analystUser(t, "password123")
		user.Enabled = false
		userRepo.On("GetByUsername", ctx, "analyst").Return(user, nil)

		resp, err := service.Login(ctx, models.LoginRequest{Username: "analyst", Password: "password123"})

		assert.Nil(t, resp)
		assert.Equal(t, custom_err.ErrInvalidCredentials, err)
	})
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	service, userRepo := setupAuthService()

	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "empty username", req: models.LoginRequest{Password: "password123"}},
		{name: "empty password", req: models.LoginRequest{Username: "analyst"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, custom_err.ErrInvalidInput)
		})
	}

	userRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	service, userRepo := setupAuthService()
	ctx := context.Background()

	userRepo.On("GetByUsername", ctx, "analyst").Return(nil, errors.New("connection reset"))

	resp, err := service.Login(ctx, models.LoginRequest{Username: "analyst", Password: "password123"})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, custom_err.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	service, _ := setupAuthService()
	user := analystUser(t, "password123")

	t.Run("expired", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := service.generateJWT(user)
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateToken(token)
		assert.Equal(t, custom_err.ErrTokenExpired, err)
	})

	t.Run("not active yet", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
		token, err := service.generateJWT(user)
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateToken(token)
		assert.Equal(t, custom_err.ErrTokenNotActive, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(nil, "other-secret", time.Hour, testLogger())
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Equal(t, custom_err.ErrInvalidToken, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := models.JWTClaims{
			UserID:   user.ID,
			Username: user.Username,
			Role:     models.Role("ROOT"),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Equal(t, custom_err.ErrInvalidToken, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.Equal(t, custom_err.ErrInvalidToken, err)
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin", func(t *testing.T) {
		service, userRepo := setupAuthService()
		userRepo.On("ExistsByUsername", ctx, "admin").Return(false, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "admin" &&
				u.Role == models.RoleAdmin &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
		})).Return(&models.User{Username: "admin"}, nil)

		err := service.EnsureAdmin(ctx, "admin", "s3cret", "admin@example.com")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("already exists", func(t *testing.T) {
		service, userRepo := setupAuthService()
		userRepo.On("ExistsByUsername", ctx, "admin").Return(true, nil)

		err := service.EnsureAdmin(ctx, "admin", "s3cret", "")

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty password skips seeding", func(t *testing.T) {
		service, userRepo := setupAuthService()

		err := service.EnsureAdmin(ctx, "admin", "", "")

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	})

	t.Run("lost race is not an error", func(t *testing.T) {
		service, userRepo := setupAuthService()
		userRepo.On("ExistsByUsername", ctx, "admin").Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil, custom_err.ErrDuplicateRequest)

		assert.NoError(t, service.EnsureAdmin(ctx, "admin", "s3cret", ""))
	})

	t.Run("lookup failure", func(t *testing.T) {
		service, userRepo := setupAuthService()
		userRepo.On("ExistsByUsername", ctx, "admin").Return(false, errors.New("db down"))

		assert.Error(t, service.EnsureAdmin(ctx, "admin", "s3cret", ""))
	})
}
