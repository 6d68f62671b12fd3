package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	userRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/user"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/ptr"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	f.nextID++
	stored := *u
	stored.ID = f.nextID
	if stored.Email != nil {
		f.byEmail[*stored.Email] = &stored
	}
	return &stored, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(repo, "test-secret", time.Hour, nopLogger{})
}

func adminUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		Name:         "Администратор",
		Email:        ptr.Ptr(email),
		Role:         domain.RoleAdmin,
		PasswordHash: ptr.Ptr(string(hash)),
	}
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"admin@salon.test": adminUser(t, "admin@salon.test", "secret123"),
	}}
	svc := newTestService(repo)

	result, err := svc.Login(context.Background(), "Admin@Salon.Test", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, domain.RoleAdmin, result.Role)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	identity, err := svc.Authenticate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.UserID)
	assert.True(t, identity.IsAdmin())
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"admin@salon.test": adminUser(t, "admin@salon.test", "secret123"),
	}}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), "admin@salon.test", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(&fakeUserRepo{byEmail: map[string]*domain.User{}})

	_, err := svc.Login(context.Background(), "nobody@salon.test", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestService(&fakeUserRepo{byEmail: map[string]*domain.User{}})

	_, err := svc.Login(context.Background(), "", "secret123")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), "admin@salon.test", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	svc := newTestService(&fakeUserRepo{byEmail: map[string]*domain.User{}})

	_, err := svc.Authenticate("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureAdmin(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{}}
	svc := newTestService(repo)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin", "Admin@Salon.Test", "secret123"))
	require.Len(t, repo.byEmail, 1)

	created := repo.byEmail["admin@salon.test"]
	require.NotNil(t, created)
	assert.Equal(t, domain.RoleAdmin, created.Role)

	// Повторный запуск не создаёт второго администратора
	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin", "admin@salon.test", "secret123"))
	assert.Len(t, repo.byEmail, 1)

	// Вход с засеянными учетными данными работает
	_, err := svc.Login(context.Background(), "admin@salon.test", "secret123")
	require.NoError(t, err)
}

func TestEnsureAdmin_NoCredentialsConfigured(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{}}
	svc := newTestService(repo)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin", "", ""))
	assert.Empty(t, repo.byEmail)
}
