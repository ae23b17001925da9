package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/isdelr/paperdeck-be/internal/models"
)

// Claims defines the JWT claims structure. The user id doubles as the
// registered subject claim.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// UserClaimsKey is the context key for user claims.
type contextKey string

const UserClaimsKey = contextKey("userClaims")

// Manager issues and validates identity tokens. The signing key comes from
// the application config rather than ambient environment reads.
type Manager struct {
	key []byte
	ttl time.Duration
}

// NewManager creates a token manager with the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{key: []byte(secret), ttl: 24 * time.Hour}
}

// GenerateToken creates a new JWT for a given user.
func (m *Manager) GenerateToken(user models.User) (string, error) {
	expirationTime := time.Now().Add(m.ttl)
	claims := &Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateToken parses and validates a JWT string.
func (m *Manager) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return claims, nil
}

// Middleware creates a middleware for protecting routes. The token is
// expected in the Authorization header as a bearer token.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, "Bearer ")
				if len(parts) == 2 {
					tokenStr = strings.TrimSpace(parts[1])
				}
			}

			if tokenStr == "" {
				writeUnauthorized(w, "Missing auth token")
				return
			}

			claims, err := m.ValidateToken(tokenStr)
			if err != nil {
				writeUnauthorized(w, "Invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the authenticated user's claims from a request context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(*Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":%q}`, msg)
}
