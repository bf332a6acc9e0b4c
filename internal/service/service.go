package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type RentalService interface {
	// Checkout opens a rental and returns its id.
	Checkout(ctx context.Context, req *domain.CheckoutRequest) (int32, error)

	// CheckIn settles an open rental: fines, discounts, payment, return,
	// maintenance dispatch and vehicle status, all-or-nothing.
	CheckIn(ctx context.Context, rentalID int32, req *domain.CheckInRequest) (*domain.SettlementSummary, error)

	GetDetail(ctx context.Context, rentalID int32) (*domain.RentalDetail, error)
	ListOpen(ctx context.Context) ([]domain.OpenRental, error)
	OpenByPlate(ctx context.Context, plate string) (*domain.OpenRentalByPlate, error)
	ExpectedReturnDate(ctx context.Context, rentalID int32) (time.Time, error)
	FinesForRental(ctx context.Context, rentalID int32) ([]domain.Fine, error)
	DiscountsForRental(ctx context.Context, rentalID int32) ([]domain.Discount, error)
	FinesByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFine, error)
}

type PaymentService interface {
	// GenerateQRCode builds a QR payload for an existing payment. No
	// gateway integration; the QR is a stub pointing at the payment
	// reference.
	GenerateQRCode(ctx context.Context, paymentID int32) (*domain.Payment, string, error)
}

type ReportService interface {
	// SalesCSV exports the rentals picked up in [dateMin, dateMax] as CSV.
	SalesCSV(ctx context.Context, dateMin, dateMax string) (filename string, content []byte, err error)
}

type EmailService interface {
	SendSettlementReceipt(ctx context.Context, email, name string, plate string, summary *domain.SettlementSummary) error
	SendReturnReminder(ctx context.Context, email, name, plate string, expectedReturn time.Time) error
}
