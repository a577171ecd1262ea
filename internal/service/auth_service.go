package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage/postgres"
)

type Auth interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ValidateToken(tokenString string) (*models.JWTClaims, error)
}

type AuthService struct {
	userRepo      postgres.UserRepository
	jwtSecret     []byte
	jwtExpiration time.Duration
	now           func() time.Time
	log           *slog.Logger
}

func NewAuthService(
	userRepo postgres.UserRepository,
	jwtSecret string,
	jwtExpiration time.Duration,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
		now:           time.Now,
		log:           log,
	}
}

// EnsureAdmin создаёт администратора при первом запуске. Пустой пароль отключает посев.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password, email string) error {
	const op = "service.EnsureAdmin"

	if password == "" {
		s.log.Warn("ADMIN_PASSWORD не задан, администратор не создаётся")
		return nil
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		s.log.Debug("администратор уже существует", slog.String("username", username))
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	_, err = s.userRepo.Create(ctx, &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, custom_err.ErrDuplicateRequest) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("создан администратор по умолчанию", slog.String("username", username))
	return nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	const op = "service.Login"
	const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", custom_err.ErrInvalidInput, err.Error())
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, custom_err.ErrNotFound) {
		s.log.Error("failed to get user", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// сравнение с фиктивным хешем выравнивает время ответа для несуществующих логинов
	hashToCompare := dummyHash
	if user != nil {
		hashToCompare = user.PasswordHash
	}

	err = bcrypt.CompareHashAndPassword([]byte(hashToCompare), []byte(req.Password))
	if user == nil || err != nil || !user.Enabled {
		return nil, custom_err.ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		s.log.Error("failed to generate JWT", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in successfully",
		slog.String("op", op),
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)))

	return &models.LoginResponse{Token: token}, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, custom_err.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, custom_err.ErrTokenNotActive
		}
		return nil, custom_err.ErrInvalidToken
	}

	if !token.Valid {
		return nil, custom_err.ErrInvalidToken
	}

	if claims.UserID == uuid.Nil || claims.Username == "" || !claims.Role.IsValid() {
		return nil, custom_err.ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) generateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := models.JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
