package jobs

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/logger"
)

type overdueRental struct {
	RentalID       int32
	Plate          string
	CustomerID     string
	ExpectedReturn time.Time
}

type dueRental struct {
	Plate          string
	ExpectedReturn time.Time
	CustomerName   string
	CustomerEmail  string
}

// MarkOverdueRentals logs every open rental that is past its expected
// return date so the fleet desk can chase them up.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		overdue, err := jr.overdueRentals(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}

		for _, o := range overdue {
			logger.Warn("Rental is overdue",
				"rental_id", o.RentalID,
				"plate", o.Plate,
				"customer_id", o.CustomerID,
				"expected_return_date", o.ExpectedReturn.Format("2006-01-02"))
		}

		logger.Info("Overdue rental sweep finished", "count", len(overdue))
	})
}

func (jr *JobRunner) overdueRentals(ctx context.Context, today time.Time) ([]overdueRental, error) {
	query := `
		SELECT r.id, r.plate, r.customer_id, r.expected_return_date
		FROM rentals r
		LEFT JOIN returns rt ON rt.rental_id = r.id
		WHERE rt.rental_id IS NULL
		  AND r.expected_return_date < $1
	`

	rows, err := jr.db.QueryContext(ctx, query, today.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overdue []overdueRental
	for rows.Next() {
		var o overdueRental
		var customerID sql.NullString
		if err := rows.Scan(&o.RentalID, &o.Plate, &customerID, &o.ExpectedReturn); err != nil {
			return nil, err
		}
		o.CustomerID = customerID.String
		overdue = append(overdue, o)
	}
	return overdue, rows.Err()
}

// SendReturnReminders emails customers whose rental is due back tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		due, err := jr.rentalsDueOn(ctx, time.Now().UTC().AddDate(0, 0, 1))
		if err != nil {
			logger.Error("Failed to query rentals due tomorrow", "error", err)
			return
		}

		sent := 0
		for _, d := range due {
			if err := jr.services.Email.SendReturnReminder(ctx, d.CustomerEmail, d.CustomerName, d.Plate, d.ExpectedReturn); err != nil {
				logger.Error("Failed to send return reminder", "plate", d.Plate, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Return reminders sent", "count", sent)
	})
}

func (jr *JobRunner) rentalsDueOn(ctx context.Context, day time.Time) ([]dueRental, error) {
	query := `
		SELECT r.plate, r.expected_return_date, c.name, c.email
		FROM rentals r
		JOIN customers c ON c.id = r.customer_id
		LEFT JOIN returns rt ON rt.rental_id = r.id
		WHERE rt.rental_id IS NULL
		  AND r.expected_return_date = $1
		  AND c.email <> ''
	`

	rows, err := jr.db.QueryContext(ctx, query, day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []dueRental
	for rows.Next() {
		var d dueRental
		if err := rows.Scan(&d.Plate, &d.ExpectedReturn, &d.CustomerName, &d.CustomerEmail); err != nil {
			return nil, err
		}
		due = append(due, d)
	}
	return due, rows.Err()
}
