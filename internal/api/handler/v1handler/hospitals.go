package v1handler

import (
	"net/http"

	"bloodlink/internal/approval"
	"bloodlink/pkg/domain"
)

type registerHospitalRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
	// Certificate is an opaque reference to the uploaded licensing document.
	Certificate string `json:"certificate"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type hospitalLoginResponse struct {
	Token    string           `json:"token"`
	Hospital *domain.Hospital `json:"hospital"`
}

type hospitalDashboardResponse struct {
	TotalRequests     int64 `json:"totalRequests"`
	PendingRequests   int64 `json:"pendingRequests"`
	FulfilledRequests int64 `json:"fulfilledRequests"`
}

// registerHospital handles a hospital application. The account starts
// unverified and cannot authenticate until approved by an admin.
func (h *Handler) registerHospital(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerHospitalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	stored, err := h.deps.Approval.Submit(ctx, approval.SubmitParams{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Location:       req.Location,
		CertificateRef: req.Certificate,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, stored)
}

func (h *Handler) loginHospital(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	token, hospital, err := h.deps.Auth.LoginHospital(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, hospitalLoginResponse{Token: token, Hospital: hospital})
}

// hospitalDashboard returns the authenticated hospital's request aggregates.
func (h *Handler) hospitalDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hospitalID := domain.HospitalID(GetIdentity(ctx).Subject)

	counts, err := h.deps.Request.HospitalStats(ctx, hospitalID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, hospitalDashboardResponse{
		TotalRequests:     counts.Total,
		PendingRequests:   counts.Pending,
		FulfilledRequests: counts.Fulfilled,
	})
}
