package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) CreateWithHistory(ctx context.Context, rental *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rentals (plate, customer_id, employee_id, pickup_date, expected_return_date, predicted_price, predicted_mileage, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rental.Plate, nullString(rental.CustomerID), rental.EmployeeID, rental.PickupDate,
		rental.ExpectedReturnDate, rental.PredictedPrice, rental.PredictedMileage, time.Now(),
	).Scan(&rental.ID)
	if err != nil {
		return err
	}

	for _, acc := range rental.Accessories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rental_accessories (rental_id, accessory_type) VALUES ($1, $2)`,
			rental.ID, acc); err != nil {
			return err
		}
	}

	if rental.CustomerID != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rental_history (rental_id, customer_id) VALUES ($1, $2)`,
			rental.ID, rental.CustomerID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE vehicles SET status = $1 WHERE plate = $2`,
		domain.VehicleStatusRented, rental.Plate); err != nil {
		return err
	}

	return tx.Commit()
}

const rentalDetailColumns = `r.id, r.plate, r.customer_id, r.employee_id, r.pickup_date,
	       r.expected_return_date, r.predicted_price, r.predicted_mileage, r.created_on,
	       v.category_type, c.daily_rate`

func (r *rentalRepository) GetOpenDetail(ctx context.Context, id int32) (*domain.RentalDetail, error) {
	query := `SELECT ` + rentalDetailColumns + `
	          FROM rentals r
	          JOIN vehicles v ON r.plate = v.plate
	          JOIN categories c ON v.category_type = c.type
	          WHERE r.id = $1
	            AND NOT EXISTS (SELECT 1 FROM returns rt WHERE rt.rental_id = r.id)`
	return r.scanDetail(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) GetDetail(ctx context.Context, id int32) (*domain.RentalDetail, error) {
	query := `SELECT ` + rentalDetailColumns + `
	          FROM rentals r
	          JOIN vehicles v ON r.plate = v.plate
	          JOIN categories c ON v.category_type = c.type
	          WHERE r.id = $1`
	return r.scanDetail(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) scanDetail(row *sql.Row) (*domain.RentalDetail, error) {
	d := &domain.RentalDetail{}
	var customerID sql.NullString
	err := row.Scan(&d.ID, &d.Plate, &customerID, &d.EmployeeID, &d.PickupDate,
		&d.ExpectedReturnDate, &d.PredictedPrice, &d.PredictedMileage, &d.CreatedOn,
		&d.CategoryType, &d.DailyRate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.CustomerID = customerID.String
	return d, nil
}

func (r *rentalRepository) HasOpenByPlate(ctx context.Context, plate string) (bool, error) {
	query := `SELECT 1 FROM rentals r
	          LEFT JOIN returns rt ON rt.rental_id = r.id
	          WHERE r.plate = $1 AND rt.rental_id IS NULL
	          LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *rentalRepository) OpenByPlate(ctx context.Context, plate string) (*domain.OpenRentalByPlate, error) {
	query := `SELECT r.id, r.predicted_price, r.expected_return_date
	          FROM rentals r
	          LEFT JOIN returns rt ON rt.rental_id = r.id
	          WHERE r.plate = $1 AND rt.rental_id IS NULL
	          LIMIT 1`
	out := &domain.OpenRentalByPlate{}
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&out.RentalID, &out.PredictedPrice, &out.ExpectedReturnDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.OpenRental, error) {
	query := `SELECT r.id, r.plate, r.customer_id
	          FROM rentals r
	          LEFT JOIN returns rt ON rt.rental_id = r.id
	          WHERE rt.rental_id IS NULL
	          ORDER BY r.id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var open []domain.OpenRental
	for rows.Next() {
		var o domain.OpenRental
		var customerID sql.NullString
		if err := rows.Scan(&o.RentalID, &o.Plate, &customerID); err != nil {
			return nil, err
		}
		o.CustomerID = customerID.String
		open = append(open, o)
	}
	return open, rows.Err()
}

func (r *rentalRepository) ExpectedReturnDate(ctx context.Context, id int32) (time.Time, error) {
	var expected time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT expected_return_date FROM rentals WHERE id = $1`, id).Scan(&expected)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, domain.ErrNotFound
	}
	return expected, err
}

func (r *rentalRepository) SettleReturn(ctx context.Context, s *domain.Settlement) (int32, *int32, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback()

	var paymentID int32
	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (reference, total_amount, payment_method) VALUES ($1, $2, $3) RETURNING id`,
		s.Payment.Reference, s.Payment.TotalAmount, s.Payment.PaymentMethod,
	).Scan(&paymentID)
	if err != nil {
		return 0, nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO returns (rental_id, payment_id, fuel_complete, vehicle_condition, actual_return_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.RentalID, paymentID, s.FuelComplete, s.VehicleCondition, s.ActualReturnDate)
	if err != nil {
		// A concurrent check-in won the race: the UNIQUE constraint on
		// returns.rental_id means this rental is no longer open.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, nil, domain.ErrNotFound
		}
		return 0, nil, err
	}

	for _, f := range s.Fines {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fines (payment_id, type, amount, reference_note) VALUES ($1, $2, $3, $4)`,
			paymentID, f.Type, f.Amount, f.ReferenceNote); err != nil {
			return 0, nil, err
		}
	}
	for _, d := range s.Discounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO discounts (payment_id, type, amount) VALUES ($1, $2, $3)`,
			paymentID, d.Type, d.Amount); err != nil {
			return 0, nil, err
		}
	}

	var maintenanceID *int32
	if s.Maintenance != nil {
		var id int32
		err = tx.QueryRowContext(ctx,
			`INSERT INTO maintenances (plate, cost, start_date, description) VALUES ($1, $2, $3, $4) RETURNING id`,
			s.Maintenance.Plate, s.Maintenance.Cost, s.Maintenance.StartDate, s.Maintenance.Description,
		).Scan(&id)
		if err != nil {
			return 0, nil, err
		}
		maintenanceID = &id
		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = $1, maintenance_id = $2 WHERE plate = $3`,
			domain.VehicleStatusMaintenance, id, s.Plate)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = $1 WHERE plate = $2`,
			domain.VehicleStatusAvailable, s.Plate)
	}
	if err != nil {
		return 0, nil, err
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, err
	}
	return paymentID, maintenanceID, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
