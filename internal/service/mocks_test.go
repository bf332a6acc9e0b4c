package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

var anyCtx = mock.Anything

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithHistory(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetOpenDetail(ctx context.Context, id int32) (*domain.RentalDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalDetail), args.Error(1)
}
func (m *MockRentalRepo) GetDetail(ctx context.Context, id int32) (*domain.RentalDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalDetail), args.Error(1)
}
func (m *MockRentalRepo) HasOpenByPlate(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) OpenByPlate(ctx context.Context, plate string) (*domain.OpenRentalByPlate, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRentalByPlate), args.Error(1)
}
func (m *MockRentalRepo) ListOpen(ctx context.Context) ([]domain.OpenRental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenRental), args.Error(1)
}
func (m *MockRentalRepo) ExpectedReturnDate(ctx context.Context, id int32) (time.Time, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockRentalRepo) SettleReturn(ctx context.Context, s *domain.Settlement) (int32, *int32, error) {
	args := m.Called(ctx, s)
	var maintenanceID *int32
	if args.Get(1) != nil {
		maintenanceID = args.Get(1).(*int32)
	}
	return args.Get(0).(int32), maintenanceID, args.Error(2)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) HasUnresolvedMaintenance(ctx context.Context, maintenanceID int32, today time.Time) (bool, error) {
	args := m.Called(ctx, maintenanceID, today)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) FinesForRental(ctx context.Context, rentalID int32) ([]domain.Fine, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fine), args.Error(1)
}
func (m *MockPaymentRepo) DiscountsForRental(ctx context.Context, rentalID int32) ([]domain.Discount, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Discount), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockHistoryRepo
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) CountRentalsByCustomer(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}
func (m *MockHistoryRepo) RecentRentalIDs(ctx context.Context, customerID string, excludeRentalID int32, limit int) ([]int32, error) {
	args := m.Called(ctx, customerID, excludeRentalID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockHistoryRepo) RentalHasFines(ctx context.Context, rentalID int32) (bool, error) {
	args := m.Called(ctx, rentalID)
	return args.Bool(0), args.Error(1)
}
func (m *MockHistoryRepo) CountDistinctCategoriesUsed(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}
func (m *MockHistoryRepo) CountCategories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockHistoryRepo) CountDistinctAccessoriesUsed(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}
func (m *MockHistoryRepo) CountAccessories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockHistoryRepo) FinesByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFine, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerFine), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) RentalsBetween(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSettlementReceipt(ctx context.Context, email, name string, plate string, summary *domain.SettlementSummary) error {
	args := m.Called(ctx, email, name, plate, summary)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, name, plate string, expectedReturn time.Time) error {
	args := m.Called(ctx, email, name, plate, expectedReturn)
	return args.Error(0)
}
