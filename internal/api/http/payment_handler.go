package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

func (h *PaymentHandler) GenerateQRCode(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeError(w, domain.NewValidationError("invalid payment id", "id"))
		return
	}

	payment, qrURL, err := h.service.GenerateQRCode(r.Context(), int32(id))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"payment_id":        payment.ID,
		"payment_reference": payment.Reference,
		"total_amount":      payment.TotalAmount,
		"qr_code_url":       qrURL,
	})
}
