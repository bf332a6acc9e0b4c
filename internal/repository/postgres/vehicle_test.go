package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
)

func TestVehicleRepository_GetByPlate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"plate", "model", "category_type", "status", "maintenance_id"}).
			AddRow("ABC1D23", "Onix", "HATCH", "AVAILABLE", nil)

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE plate").
			WithArgs("ABC1D23").
			WillReturnRows(rows)

		v, err := repo.GetByPlate(ctx, "ABC1D23")
		assert.NoError(t, err)
		assert.Equal(t, domain.VehicleStatusAvailable, v.Status)
		assert.Nil(t, v.MaintenanceID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE plate").
			WithArgs("ZZZ0Z00").
			WillReturnRows(sqlmock.NewRows([]string{"plate"}))

		_, err := repo.GetByPlate(ctx, "ZZZ0Z00")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVehicleRepository_HasUnresolvedMaintenance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()
	today := date(2026, 3, 10)

	t.Run("NoReturnDateYet", func(t *testing.T) {
		mock.ExpectQuery("SELECT return_date FROM maintenances").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"return_date"}).AddRow(nil))

		unresolved, err := repo.HasUnresolvedMaintenance(ctx, 5, today)
		assert.NoError(t, err)
		assert.True(t, unresolved)
	})

	t.Run("ReturnDateInFuture", func(t *testing.T) {
		mock.ExpectQuery("SELECT return_date FROM maintenances").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"return_date"}).AddRow(date(2026, 3, 15)))

		unresolved, err := repo.HasUnresolvedMaintenance(ctx, 5, today)
		assert.NoError(t, err)
		assert.True(t, unresolved)
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		mock.ExpectQuery("SELECT return_date FROM maintenances").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"return_date"}).AddRow(date(2026, 3, 1)))

		unresolved, err := repo.HasUnresolvedMaintenance(ctx, 5, today)
		assert.NoError(t, err)
		assert.False(t, unresolved)
	})

	t.Run("MissingRecordCountsAsResolved", func(t *testing.T) {
		mock.ExpectQuery("SELECT return_date FROM maintenances").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"return_date"}))

		unresolved, err := repo.HasUnresolvedMaintenance(ctx, 9, today)
		assert.NoError(t, err)
		assert.False(t, unresolved)
	})
}
