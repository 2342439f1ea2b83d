package v1handler

import (
	"net/http"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type adminLoginResponse struct {
	Token string        `json:"token"`
	Admin *domain.Admin `json:"admin"`
}

type hospitalListResponse struct {
	Items []domain.Hospital `json:"items"`
	Count int               `json:"count"`
}

func (h *Handler) loginAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	token, admin, err := h.deps.Auth.LoginAdmin(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, adminLoginResponse{Token: token, Admin: admin})
}

// adminDashboard returns platform-wide aggregates.
func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.deps.Approval.Stats(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}

// pendingHospitals lists hospitals awaiting review, oldest application first.
func (h *Handler) pendingHospitals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hospitals, err := h.deps.Approval.Pending(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, hospitalListResponse{Items: hospitals, Count: len(hospitals)})
}

func (h *Handler) approveHospital(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	adminID := domain.AdminID(GetIdentity(ctx).Subject)
	hospital, err := h.deps.Approval.Approve(ctx, domain.HospitalID(id), adminID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, hospital)
}

func (h *Handler) rejectHospital(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	adminID := domain.AdminID(GetIdentity(ctx).Subject)
	hospital, err := h.deps.Approval.Reject(ctx, domain.HospitalID(id), adminID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, hospital)
}

// deactivateDonor removes a donor from the matching pool.
func (h *Handler) deactivateDonor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	updated, err := h.deps.Donor.Deactivate(ctx, domain.DonorID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}

// pathID parses the {id} URL parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}
