package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
)

func TestHistoryRepository_RecentRentalIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewHistoryRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id FROM rentals").
		WithArgs("cust-1", int32(42), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41).AddRow(40).AddRow(39))

	ids, err := repo.RecentRentalIDs(ctx, "cust-1", 42, 5)
	assert.NoError(t, err)
	assert.Equal(t, []int32{41, 40, 39}, ids)
}

func TestHistoryRepository_RentalHasFines(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewHistoryRepository(db)
	ctx := context.Background()

	t.Run("Fined", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM fines f").
			WithArgs(int32(40)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		fined, err := repo.RentalHasFines(ctx, 40)
		assert.NoError(t, err)
		assert.True(t, fined)
	})

	t.Run("Clean", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM fines f").
			WithArgs(int32(41)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		fined, err := repo.RentalHasFines(ctx, 41)
		assert.NoError(t, err)
		assert.False(t, fined)
	})
}

func TestHistoryRepository_FinesByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewHistoryRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"type", "amount", "reference_note", "id", "pickup_date", "model"}).
		AddRow("LATE", 150.0, "3 days late", 40, date(2026, 2, 1), "Onix").
		AddRow("FUEL", 100.0, "fuel tank not full", 39, date(2026, 1, 10), "Onix")

	mock.ExpectQuery("SELECT f.type, f.amount").
		WithArgs("cust-1").
		WillReturnRows(rows)

	fines, err := repo.FinesByCustomer(ctx, "cust-1")
	assert.NoError(t, err)
	assert.Len(t, fines, 2)
	assert.Equal(t, domain.FineTypeLate, fines[0].Type)
	assert.Equal(t, int32(40), fines[0].RentalID)
	assert.Equal(t, "Onix", fines[0].VehicleModel)
}
