package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (int32, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalService) CheckIn(ctx context.Context, rentalID int32, req *domain.CheckInRequest) (*domain.SettlementSummary, error) {
	args := m.Called(ctx, rentalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementSummary), args.Error(1)
}
func (m *MockRentalService) GetDetail(ctx context.Context, rentalID int32) (*domain.RentalDetail, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalDetail), args.Error(1)
}
func (m *MockRentalService) ListOpen(ctx context.Context) ([]domain.OpenRental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenRental), args.Error(1)
}
func (m *MockRentalService) OpenByPlate(ctx context.Context, plate string) (*domain.OpenRentalByPlate, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpenRentalByPlate), args.Error(1)
}
func (m *MockRentalService) ExpectedReturnDate(ctx context.Context, rentalID int32) (time.Time, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockRentalService) FinesForRental(ctx context.Context, rentalID int32) ([]domain.Fine, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fine), args.Error(1)
}
func (m *MockRentalService) DiscountsForRental(ctx context.Context, rentalID int32) ([]domain.Discount, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Discount), args.Error(1)
}
func (m *MockRentalService) FinesByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFine, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerFine), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GenerateQRCode(ctx context.Context, paymentID int32) (*domain.Payment, string, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.String(1), args.Error(2)
}

// MockReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SalesCSV(ctx context.Context, dateMin, dateMax string) (string, []byte, error) {
	args := m.Called(ctx, dateMin, dateMax)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}
