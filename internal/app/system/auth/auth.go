// Package auth implements the bearer-credential authorization pipeline.
//
// Every gated request passes through the same steps: extract the
// Authorization header, verify the token signature and expiry, re-resolve
// the live user by the decoded username, and (for the capability gates)
// check the required capability against current store state. The token
// payload is an identity hint only; a token issued for a user who has since
// been deleted fails resolution and is rejected.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/authz"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/token"
	"go.uber.org/zap"
)

// Identity is the resolved user injected into the request context.
type Identity struct {
	ID       uint
	Username string
	Email    string
	Role     string
}

// UserFetcher loads fresh user data for a decoded username. It returns nil
// if the user does not exist or cannot be loaded, so role changes and
// deletions take effect on the next request.
type UserFetcher interface {
	FetchUser(ctx context.Context, username string) *Identity
}

// CapabilityChecker answers whether a user holds a named capability.
// Satisfied by authz.Resolver.
type CapabilityChecker interface {
	HasCapability(ctx context.Context, role string, userID uint, capability string) (bool, error)
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the identity attached by the middleware, if any.
func CurrentUser(r *http.Request) (*Identity, bool) {
	u, ok := r.Context().Value(currentUserKey).(*Identity)
	return u, ok
}

// WithTestIdentity attaches an identity to the request context. Test helper;
// production code attaches identities only through the middleware.
func WithTestIdentity(r *http.Request, u *Identity) *http.Request {
	return withUser(r, u)
}

// Middleware provides the gate variants. One instance is built at startup
// and shared by every mounted feature router.
type Middleware struct {
	tokens *token.Service
	users  UserFetcher
	caps   CapabilityChecker
	log    *zap.Logger
}

// NewMiddleware wires the token service, user fetcher, and capability
// checker into a Middleware.
func NewMiddleware(tokens *token.Service, users UserFetcher, caps CapabilityChecker, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, users: users, caps: caps, log: logger}
}

// RequireAuth admits any request carrying a valid credential for a live
// user. Missing credential yields 401 "Access denied"; malformed, expired,
// or unresolvable credentials yield 401 "Invalid token".
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireWriter admits authenticated users holding the writer capability.
func (m *Middleware) RequireWriter(next http.Handler) http.Handler {
	return m.requireCapability(authz.CapabilityWriter, next)
}

// RequireAdmin admits authenticated users holding the admin capability.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return m.requireCapability(authz.CapabilityAdmin, next)
}

func (m *Middleware) requireCapability(capability string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := m.authenticate(w, r)
		if !ok {
			return
		}

		has, err := m.caps.HasCapability(r.Context(), u.Role, u.ID, capability)
		if err != nil {
			m.log.Error("capability check failed",
				zap.String("capability", capability),
				zap.Uint("user_id", u.ID),
				zap.Error(err))
			jsonapi.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if !has {
			jsonapi.Error(w, http.StatusForbidden, "Access denied")
			return
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// authenticate runs the credential verification steps shared by every gate.
// On failure it writes the rejection response and returns ok=false.
func (m *Middleware) authenticate(w http.ResponseWriter, r *http.Request) (*Identity, bool) {
	raw, ok := bearerToken(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return nil, false
	}

	username, err := m.tokens.Verify(raw)
	if err != nil {
		jsonapi.Error(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	// The signed payload may reference a user that no longer exists.
	u := m.users.FetchUser(r.Context(), username)
	if u == nil {
		jsonapi.Error(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	return u, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func withUser(r *http.Request, u *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}
