package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// IdentityKey is the context key under which the verified claims of the
// caller are stored.
const IdentityKey contextKey = "identity"

// Identity is the set of claims attached to the request after the bearer
// token has been verified.
type Identity struct {
	UserID    string
	Username  string
	FirstName string
	LastName  string
	Admin     bool
}

type TokenVerifier interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate gates a handler behind bearer token verification. A missing
// header, a malformed header and an invalid or expired token all produce the
// same 401 response so callers learn nothing about the failure mode. The
// wrapped handler is never reached on failure.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := ""
		if reqIdCtx := r.Context().Value(RequestIDKey); reqIdCtx != nil {
			requestId = reqIdCtx.(string)
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.logs.Errorw("missing or malformed authorization header", "request_id", requestId)
			m.unauthorized(w)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.verifier.Validate(token)
		if err != nil {
			m.logs.Errorw("token validation failed", "error", err, "request_id", requestId)
			m.unauthorized(w)
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			m.logs.Errorw("token claims incomplete", "request_id", requestId)
			m.unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext retrieves the identity set by Authenticate.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   "missing or invalid bearer token",
	})
}

func identityFromClaims(claims jwt.MapClaims) (Identity, bool) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, false
	}

	identity := Identity{UserID: sub}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	if firstName, ok := claims["firstName"].(string); ok {
		identity.FirstName = firstName
	}
	if lastName, ok := claims["lastName"].(string); ok {
		identity.LastName = lastName
	}
	if admin, ok := claims["admin"].(bool); ok {
		identity.Admin = admin
	}

	return identity, true
}
