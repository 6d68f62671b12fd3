package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/auth"
)

const (
	msgMissingToken = "требуется токен доступа"
	msgInvalidToken = "некорректный или просроченный токен"
	msgAdminOnly    = "операция доступна только администратору"
)

type identityKey struct{}

// Authenticator интерфейс проверки токена доступа
type Authenticator interface {
	Authenticate(token string) (*auth.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации по Bearer токену
type Auth struct {
	authenticator Authenticator
	logger        Logger
}

// NewAuth создает новый middleware аутентификации
func NewAuth(authenticator Authenticator, logger Logger) *Auth {
	return &Auth{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Require проверяет токен и кладет личность вызывающего в контекст
func (m *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			m.logger.Warn("%s %s - Missing access token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		identity, err := m.authenticator.Authenticate(token)
		if err != nil {
			m.logger.Warn("%s %s - Invalid access token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// RequireAdmin проверяет токен и роль администратора
func (m *Auth) RequireAdmin(next http.Handler) http.Handler {
	return m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())
		if identity == nil || !identity.IsAdmin() {
			m.logger.Warn("%s %s - Admin role required", r.Method, r.URL.Path)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// WithIdentity кладет личность вызывающего в контекст
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext достает личность вызывающего из контекста
func IdentityFromContext(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey{}).(*auth.Identity)
	return identity
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
