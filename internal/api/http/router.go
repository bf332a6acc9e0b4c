package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface. All routes live under /api.
func NewRouter(rentals *RentalHandler, payments *PaymentHandler, reports *ReportHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/rentals", rentals.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/rentals/open", rentals.ListOpen).Methods(http.MethodGet)
	api.HandleFunc("/rentals/plate/{plate}", rentals.OpenByPlate).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentals.GetDetail).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", rentals.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/fines", rentals.FinesForRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/discounts", rentals.DiscountsForRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/expected-return", rentals.ExpectedReturnDate).Methods(http.MethodGet)

	api.HandleFunc("/customers/{id}/fines", rentals.FinesByCustomer).Methods(http.MethodGet)

	api.HandleFunc("/payments/{id}/qrcode", payments.GenerateQRCode).Methods(http.MethodPost)

	api.HandleFunc("/reports/sales", reports.SalesReport).Methods(http.MethodPost)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
