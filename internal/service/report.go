package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"carrental-backend/internal/calc"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

var salesColumns = []string{
	"id", "plate", "customer_id", "employee_id", "pickup_date",
	"expected_return_date", "predicted_price", "predicted_mileage", "created_on",
}

func (s *reportService) SalesCSV(ctx context.Context, dateMin, dateMax string) (string, []byte, error) {
	var missing []string
	if dateMin == "" {
		missing = append(missing, "date_min")
	}
	if dateMax == "" {
		missing = append(missing, "date_max")
	}
	if len(missing) > 0 {
		return "", nil, domain.NewValidationError("missing required fields", missing...)
	}

	from, ok := calc.ParseISODate(dateMin)
	if !ok {
		return "", nil, domain.NewValidationError("invalid date format, expected yyyy-mm-dd", "date_min")
	}
	to, ok := calc.ParseISODate(dateMax)
	if !ok {
		return "", nil, domain.NewValidationError("invalid date format, expected yyyy-mm-dd", "date_max")
	}
	if from.After(to) {
		return "", nil, domain.NewValidationError("date_min cannot be after date_max", "date_min", "date_max")
	}

	rentals, err := s.reportRepo.RentalsBetween(ctx, from, to)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(salesColumns); err != nil {
		return "", nil, err
	}
	for _, rt := range rentals {
		pickup := ""
		if rt.PickupDate != nil {
			pickup = rt.PickupDate.Format("2006-01-02")
		}
		mileage := ""
		if rt.PredictedMileage != nil {
			mileage = strconv.FormatFloat(*rt.PredictedMileage, 'f', -1, 64)
		}
		record := []string{
			strconv.FormatInt(int64(rt.ID), 10),
			rt.Plate,
			rt.CustomerID,
			strconv.FormatInt(int64(rt.EmployeeID), 10),
			pickup,
			rt.ExpectedReturnDate.Format("2006-01-02"),
			strconv.FormatFloat(rt.PredictedPrice, 'f', 2, 64),
			mileage,
			rt.CreatedOn.Format("2006-01-02T15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("sales_%s_%s.csv",
		strings.ReplaceAll(dateMin, "-", ""),
		strings.ReplaceAll(dateMax, "-", ""))
	return filename, buf.Bytes(), nil
}
