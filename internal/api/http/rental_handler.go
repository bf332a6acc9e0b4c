package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type RentalHandler struct {
	service service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{service: svc}
}

func rentalID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid rental id", "id")
	}
	return int32(id), nil
}

func (h *RentalHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	id, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"rental_id": id})
}

func (h *RentalHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req domain.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	summary, err := h.service.CheckIn(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *RentalHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.ListOpen(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.service.GetDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RentalHandler) FinesForRental(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	fines, err := h.service.FinesForRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fines)
}

func (h *RentalHandler) DiscountsForRental(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	discounts, err := h.service.DiscountsForRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, discounts)
}

func (h *RentalHandler) ExpectedReturnDate(w http.ResponseWriter, r *http.Request) {
	id, err := rentalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	date, err := h.service.ExpectedReturnDate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"expected_return_date": date.Format("2006-01-02")})
}

func (h *RentalHandler) OpenByPlate(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["plate"]
	if plate == "" {
		writeError(w, domain.NewValidationError("plate is required", "plate"))
		return
	}

	rental, err := h.service.OpenByPlate(r.Context(), plate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) FinesByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["id"]
	if customerID == "" {
		writeError(w, domain.NewValidationError("customer id is required", "id"))
		return
	}

	fines, err := h.service.FinesByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fines)
}
