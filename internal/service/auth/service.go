package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	userRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/user"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/authtoken"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/ptr"
)

// Service сервис аутентификации и выдачи токенов доступа
type Service struct {
	userRepo UserRepository
	secret   string
	tokenTTL time.Duration
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Identity данные аутентифицированного пользователя из токена
type Identity struct {
	UserID int64
	Role   domain.UserRole
}

// IsAdmin возвращает true для администратора
func (i *Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// LoginResult результат успешного входа
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    int64
	Role      domain.UserRole
}

// Login проверяет учетные данные и выдает токен доступа
// Неверный email и неверный пароль неразличимы для вызывающего
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user not found for email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if user.PasswordHash == nil {
		s.logger.Warn("Login: user id=%d has no password credential", user.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: password mismatch for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	token, err := authtoken.Sign(authtoken.Claims{
		Sub:  strconv.FormatInt(user.ID, 10),
		Role: string(user.Role),
		Exp:  expiresAt.Unix(),
		Iat:  now.Unix(),
	}, s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful login for user id=%d, role=%s", user.ID, user.Role)
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Role:      user.Role,
	}, nil
}

// Authenticate проверяет токен доступа и возвращает личность вызывающего
func (s *Service) Authenticate(token string) (*Identity, error) {
	claims, err := authtoken.Verify(token, s.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: userID,
		Role:   domain.UserRole(claims.Role),
	}, nil
}

// EnsureAdmin создает администратора при первом запуске
// Повторный запуск с существующим администратором ничего не меняет
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		s.logger.Info("EnsureAdmin: admin credentials not configured, skipping")
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("EnsureAdmin: admin account already exists")
		return nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("EnsureAdmin: repository error: %v", err)
		return fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("EnsureAdmin: failed to hash password: %v", err)
		return fmt.Errorf("%w: EnsureAdmin - failed to hash password: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Email:        ptr.Ptr(email),
		Role:         domain.RoleAdmin,
		PasswordHash: ptr.Ptr(string(hash)),
	})
	if err != nil {
		s.logger.Error("EnsureAdmin: failed to create admin: %v", err)
		return fmt.Errorf("%w: EnsureAdmin - failed to create admin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAdmin: created admin account id=%d", created.ID)
	return nil
}
