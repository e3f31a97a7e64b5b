/**
 * @description
 * Session middleware for the gateway facade. The browser sends the marketplace
 * bearer token with every request; the middleware validates it, lifts the
 * subject id and role into the request context for role gating, and stashes
 * the raw token so outbound calls to the remote service carry the same
 * credentials.
 *
 * @dependencies
 * - github.com/golang-jwt/jwt/v5: HS256 session token parsing.
 * - pkg/marketclient: token forwarding on the outbound context.
 */

package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workbridge/client-gateway/internal/domain"
	"github.com/workbridge/client-gateway/pkg/marketclient"
)

type identityContextKey struct{}

// Identity is the authenticated caller as seen by the facade.
type Identity struct {
	UserID int64
	Role   domain.Role
}

// SessionMiddleware validates the bearer token and attaches the caller's
// Identity to the request context. The same raw token is forwarded to the
// remote service, so the gateway never mints credentials of its own.
func SessionMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				http.Error(w, "User ID not found in token", http.StatusUnauthorized)
				return
			}
			userID, err := strconv.ParseInt(sub, 10, 64)
			if err != nil {
				http.Error(w, "Invalid user ID in token", http.StatusUnauthorized)
				return
			}

			roleClaim, _ := claims["role"].(string)
			role, err := domain.ParseRole(roleClaim)
			if err != nil {
				http.Error(w, "Unknown role in token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, Identity{UserID: userID, Role: role})
			ctx = marketclient.WithToken(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext retrieves the authenticated caller set by
// SessionMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// RequireRole restricts a route subtree to the given roles. It assumes
// SessionMiddleware already ran; an absent identity is treated as
// unauthenticated rather than forbidden.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				http.Error(w, "Authorization required", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Insufficient role", http.StatusForbidden)
		})
	}
}
