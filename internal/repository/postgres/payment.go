package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, reference, total_amount, payment_method FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Reference, &p.TotalAmount, &p.PaymentMethod)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) FinesForRental(ctx context.Context, rentalID int32) ([]domain.Fine, error) {
	query := `SELECT f.type, f.amount, f.reference_note
	          FROM fines f
	          JOIN returns rt ON rt.payment_id = f.payment_id
	          WHERE rt.rental_id = $1`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fines []domain.Fine
	for rows.Next() {
		var f domain.Fine
		if err := rows.Scan(&f.Type, &f.Amount, &f.ReferenceNote); err != nil {
			return nil, err
		}
		fines = append(fines, f)
	}
	return fines, rows.Err()
}

func (r *paymentRepository) DiscountsForRental(ctx context.Context, rentalID int32) ([]domain.Discount, error) {
	query := `SELECT d.type, d.amount
	          FROM discounts d
	          JOIN returns rt ON rt.payment_id = d.payment_id
	          WHERE rt.rental_id = $1`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discounts []domain.Discount
	for rows.Next() {
		var d domain.Discount
		if err := rows.Scan(&d.Type, &d.Amount); err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}
