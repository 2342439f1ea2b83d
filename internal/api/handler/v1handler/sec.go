package v1handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/logger"
	"bloodlink/pkg/serrors"

	"go.uber.org/zap"
)

type contextKey int

// identityKey stores the verified caller identity in the request context.
const identityKey contextKey = iota

// GetIdentity returns the authenticated identity stored by requireRole.
// It returns the zero Identity when the request was not authenticated.
func GetIdentity(ctx context.Context) domain.Identity {
	identity, _ := ctx.Value(identityKey).(domain.Identity)

	return identity
}

// requireRole verifies the bearer token and enforces that the caller holds
// one of the allowed roles. A missing or invalid token is unauthorized; a
// valid token with the wrong role is forbidden.
func (h *Handler) requireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			identity, err := h.deps.Tokens.Verify(raw)
			if err != nil {
				writeError(ctx, w, err)

				return
			}

			if !slices.Contains(roles, identity.Role) {
				writeError(ctx, w, serrors.With(serrors.ErrForbidden, "insufficient role"))

				return
			}

			ctx = context.WithValue(ctx, identityKey, *identity)
			ctx = logger.WithFields(ctx,
				zap.String("subject", identity.Subject.String()),
				zap.String("role", string(identity.Role)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
