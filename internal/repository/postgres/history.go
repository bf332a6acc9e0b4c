package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type historyRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) CountRentalsByCustomer(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rentals WHERE customer_id = $1`, customerID).Scan(&count)
	return count, err
}

func (r *historyRepository) RecentRentalIDs(ctx context.Context, customerID string, excludeRentalID int32, limit int) ([]int32, error) {
	query := `SELECT id FROM rentals
	          WHERE customer_id = $1 AND id != $2
	          ORDER BY pickup_date DESC
	          LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, customerID, excludeRentalID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *historyRepository) RentalHasFines(ctx context.Context, rentalID int32) (bool, error) {
	query := `SELECT 1 FROM fines f
	          JOIN returns rt ON rt.payment_id = f.payment_id
	          WHERE rt.rental_id = $1
	          LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *historyRepository) CountDistinctCategoriesUsed(ctx context.Context, customerID string) (int, error) {
	query := `SELECT count(DISTINCT v.category_type)
	          FROM rentals r
	          JOIN vehicles v ON r.plate = v.plate
	          WHERE r.customer_id = $1`
	var count int
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count)
	return count, err
}

func (r *historyRepository) CountCategories(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM categories`).Scan(&count)
	return count, err
}

func (r *historyRepository) CountDistinctAccessoriesUsed(ctx context.Context, customerID string) (int, error) {
	query := `SELECT count(DISTINCT ra.accessory_type)
	          FROM rentals r
	          JOIN rental_accessories ra ON ra.rental_id = r.id
	          WHERE r.customer_id = $1`
	var count int
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count)
	return count, err
}

func (r *historyRepository) CountAccessories(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM accessories`).Scan(&count)
	return count, err
}

func (r *historyRepository) FinesByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFine, error) {
	query := `SELECT f.type, f.amount, f.reference_note, r.id, r.pickup_date, v.model
	          FROM fines f
	          JOIN returns rt ON rt.payment_id = f.payment_id
	          JOIN rentals r ON r.id = rt.rental_id
	          JOIN vehicles v ON v.plate = r.plate
	          WHERE r.customer_id = $1
	          ORDER BY r.pickup_date DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fines []domain.CustomerFine
	for rows.Next() {
		var f domain.CustomerFine
		if err := rows.Scan(&f.Type, &f.Amount, &f.ReferenceNote, &f.RentalID, &f.PickupDate, &f.VehicleModel); err != nil {
			return nil, err
		}
		fines = append(fines, f)
	}
	return fines, rows.Err()
}
