package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

type salesReportRequest struct {
	DateMin string `json:"date_min"`
	DateMax string `json:"date_max"`
}

func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	var req salesReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	filename, content, err := h.service.SalesCSV(r.Context(), req.DateMin, req.DateMax)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
