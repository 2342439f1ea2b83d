// Package v1handler implements the v1 HTTP API on top of the workflow
// services. Handlers stay thin: decode, delegate, encode, with all semantics
// living in the services and all error classification in the serrors kinds.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bloodlink/internal/approval"
	"bloodlink/internal/auth"
	"bloodlink/internal/donor"
	"bloodlink/internal/matching"
	"bloodlink/internal/request"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/logger"
	"bloodlink/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// defaultLimit is the page size for list endpoints when the request does not
// carry one.
const defaultLimit = 20

// Deps bundles the services the handlers delegate to.
type Deps struct {
	Auth     auth.Service
	Donor    donor.Service
	Approval approval.Service
	Request  request.Service
	Matcher  matching.Matcher

	// Tokens verifies bearer tokens for the authenticated route groups.
	Tokens *auth.Tokens
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers all v1 endpoints on the given router. Public endpoints
// (registrations and logins) come first; the hospital and admin groups are
// gated by bearer-token role checks.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/donors", h.registerDonor)
	r.Post("/hospitals", h.registerHospital)
	r.Post("/hospitals/login", h.loginHospital)
	r.Post("/admin/login", h.loginAdmin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireRole(domain.RoleHospital, domain.RoleAdmin))
		r.Get("/donors", h.listDonors)
		r.Get("/donors/eligible", h.eligibleDonors)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireRole(domain.RoleHospital))
		r.Get("/hospitals/dashboard", h.hospitalDashboard)
		r.Post("/blood-requests", h.createRequest)
		r.Get("/blood-requests", h.listRequests)
		r.Post("/blood-requests/{id}/fulfill", h.fulfillRequest)
		r.Post("/blood-requests/{id}/cancel", h.cancelRequest)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireRole(domain.RoleAdmin))
		r.Get("/admin/dashboard", h.adminDashboard)
		r.Get("/admin/hospitals/pending", h.pendingHospitals)
		r.Post("/admin/hospitals/{id}/approve", h.approveHospital)
		r.Post("/admin/hospitals/{id}/reject", h.rejectHospital)
		r.Post("/admin/donors/{id}/deactivate", h.deactivateDonor)
	})
}

// errorResponse is the uniform error body for all non-2xx answers.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// writeError maps the semantic error taxonomy to HTTP status codes. Anything
// without a recognized kind is an internal error: logged in full, answered
// generically.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict), errors.Is(err, serrors.ErrInvalidState):
		status = http.StatusConflict
	default:
		logger.Error(ctx, "internal error", zap.Error(err))
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})

		return
	}

	msg := err.Error()
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}

	writeJSON(ctx, w, status, errorResponse{Error: msg})
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
