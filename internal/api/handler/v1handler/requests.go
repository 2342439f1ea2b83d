package v1handler

import (
	"net/http"
	"strconv"

	"bloodlink/internal/request"
	"bloodlink/pkg/domain"
)

type createRequestRequest struct {
	BloodType string `json:"bloodType"`
	Urgency   string `json:"urgency"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

type createRequestResponse struct {
	Request *domain.BloodRequest `json:"request"`
	// NotifiedDonors is the number of donors eligible when the request was
	// created; delivery itself happens asynchronously.
	NotifiedDonors int `json:"notifiedDonors"`
}

type requestListResponse struct {
	Items      []domain.BloodRequest `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

// createRequest creates a pending blood request for the authenticated
// hospital and reports how many donors matched at creation time.
func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hospitalID := domain.HospitalID(GetIdentity(ctx).Subject)

	var req createRequestRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	stored, notified, err := h.deps.Request.Create(ctx, hospitalID, request.CreateParams{
		BloodType: req.BloodType,
		Urgency:   req.Urgency,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, createRequestResponse{
		Request:        stored,
		NotifiedDonors: notified,
	})
}

// listRequests returns a page of the hospital's own requests, newest first.
func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hospitalID := domain.HospitalID(GetIdentity(ctx).Subject)

	limit := uint(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			limit = uint(parsed)
		}
	}

	requests, nextCursor, err := h.deps.Request.ListByHospital(ctx, hospitalID, request.ListParams{
		Status: r.URL.Query().Get("status"),
		Cursor: r.URL.Query().Get("cursor"),
		Limit:  limit,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, requestListResponse{
		Items:      requests,
		NextCursor: nextCursor,
	})
}

// fulfillRequest marks a pending request as fulfilled. Repeating the call on
// an already fulfilled request succeeds with the unchanged record.
func (h *Handler) fulfillRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hospitalID := domain.HospitalID(GetIdentity(ctx).Subject)

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	updated, err := h.deps.Request.MarkFulfilled(ctx, hospitalID, domain.RequestID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}

// cancelRequest marks a pending request as cancelled with the same
// idempotency rules as fulfillRequest.
func (h *Handler) cancelRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hospitalID := domain.HospitalID(GetIdentity(ctx).Subject)

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	updated, err := h.deps.Request.MarkCancelled(ctx, hospitalID, domain.RequestID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}
