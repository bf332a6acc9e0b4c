package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT plate, model, category_type, status, maintenance_id FROM vehicles WHERE plate = $1`
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&v.Plate, &v.Model, &v.CategoryType, &v.Status, &v.MaintenanceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) HasUnresolvedMaintenance(ctx context.Context, maintenanceID int32, today time.Time) (bool, error) {
	var returnDate sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT return_date FROM maintenances WHERE id = $1`, maintenanceID).Scan(&returnDate)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !returnDate.Valid || returnDate.Time.After(today), nil
}
