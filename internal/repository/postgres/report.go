package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) RentalsBetween(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	query := `SELECT id, plate, customer_id, employee_id, pickup_date, expected_return_date,
	                 predicted_price, predicted_mileage, created_on
	          FROM rentals
	          WHERE pickup_date >= $1 AND pickup_date <= $2
	          ORDER BY pickup_date`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var customerID sql.NullString
		if err := rows.Scan(&rt.ID, &rt.Plate, &customerID, &rt.EmployeeID, &rt.PickupDate,
			&rt.ExpectedReturnDate, &rt.PredictedPrice, &rt.PredictedMileage, &rt.CreatedOn); err != nil {
			return nil, err
		}
		rt.CustomerID = customerID.String
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
