package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type RentalRepository interface {
	// CreateWithHistory inserts the rental, its accessory rows and the
	// customer history entry, and flips the vehicle to RENTED, all in one
	// transaction.
	CreateWithHistory(ctx context.Context, rental *domain.Rental) error

	// GetOpenDetail fetches the rental joined with vehicle and category,
	// but only while no Return exists for it. Settled or unknown rentals
	// yield domain.ErrNotFound.
	GetOpenDetail(ctx context.Context, id int32) (*domain.RentalDetail, error)

	// GetDetail fetches the joined rental regardless of settlement state.
	GetDetail(ctx context.Context, id int32) (*domain.RentalDetail, error)

	HasOpenByPlate(ctx context.Context, plate string) (bool, error)
	OpenByPlate(ctx context.Context, plate string) (*domain.OpenRentalByPlate, error)
	ListOpen(ctx context.Context) ([]domain.OpenRental, error)
	ExpectedReturnDate(ctx context.Context, id int32) (time.Time, error)

	// SettleReturn persists a complete settlement in one transaction:
	// payment, return, fine and discount line items, optional maintenance
	// dispatch, vehicle status. A UNIQUE violation on returns.rental_id
	// surfaces as domain.ErrNotFound (the rental is no longer open).
	SettleReturn(ctx context.Context, s *domain.Settlement) (paymentID int32, maintenanceID *int32, err error)
}

type VehicleRepository interface {
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)

	// HasUnresolvedMaintenance reports whether the maintenance record has
	// no return date yet, or a return date still in the future.
	HasUnresolvedMaintenance(ctx context.Context, maintenanceID int32, today time.Time) (bool, error)
}

type PaymentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	FinesForRental(ctx context.Context, rentalID int32) ([]domain.Fine, error)
	DiscountsForRental(ctx context.Context, rentalID int32) ([]domain.Discount, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// HistoryRepository answers the aggregate customer-history questions the
// discount rules ask.
type HistoryRepository interface {
	CountRentalsByCustomer(ctx context.Context, customerID string) (int, error)
	RecentRentalIDs(ctx context.Context, customerID string, excludeRentalID int32, limit int) ([]int32, error)
	RentalHasFines(ctx context.Context, rentalID int32) (bool, error)
	CountDistinctCategoriesUsed(ctx context.Context, customerID string) (int, error)
	CountCategories(ctx context.Context) (int, error)
	CountDistinctAccessoriesUsed(ctx context.Context, customerID string) (int, error)
	CountAccessories(ctx context.Context) (int, error)
	FinesByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFine, error)
}

type ReportRepository interface {
	RentalsBetween(ctx context.Context, from, to time.Time) ([]domain.Rental, error)
}
