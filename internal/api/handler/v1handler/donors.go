package v1handler

import (
	"net/http"

	"bloodlink/internal/donor"
	"bloodlink/pkg/domain"
)

type registerDonorRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	BloodType string `json:"bloodType"`
	Location  string `json:"location"`
}

type donorListResponse struct {
	Items []domain.Donor `json:"items"`
	Count int            `json:"count"`
}

// registerDonor handles public donor self-registration.
func (h *Handler) registerDonor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerDonorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	stored, err := h.deps.Donor.Register(ctx, donor.RegisterParams{
		Name:      req.Name,
		Phone:     req.Phone,
		WhatsApp:  req.WhatsApp,
		BloodType: req.BloodType,
		Location:  req.Location,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, stored)
}

// listDonors returns registry donors, optionally filtered by blood type and
// activity.
func (h *Handler) listDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donors, err := h.deps.Donor.List(ctx, donor.ListParams{
		BloodType:  r.URL.Query().Get("bloodType"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, donorListResponse{Items: donors, Count: len(donors)})
}

// eligibleDonors returns the active donors that exactly match the requested
// blood type, in deterministic registration order.
func (h *Handler) eligibleDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donors, err := h.deps.Matcher.Eligible(ctx, r.URL.Query().Get("bloodType"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, donorListResponse{Items: donors, Count: len(donors)})
}
