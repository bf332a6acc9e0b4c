package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/calc"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"

	"github.com/google/uuid"
)

const defaultPaymentMethod = "PIX"

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	historyRepo  repository.HistoryRepository
	discounts    *discountEngine
	emailSvc     EmailService
	now          func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	historyRepo repository.HistoryRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		historyRepo:  historyRepo,
		discounts:    newDiscountEngine(historyRepo),
		emailSvc:     emailSvc,
		now:          time.Now,
	}
}

func (s *rentalService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (int32, error) {
	var missing []string
	if req.Plate == "" {
		missing = append(missing, "plate")
	}
	if req.EmployeeID == 0 {
		missing = append(missing, "employee_id")
	}
	if req.PickupDate == "" {
		missing = append(missing, "pickup_date")
	}
	if req.ExpectedReturnDate == "" {
		missing = append(missing, "expected_return_date")
	}
	if len(missing) > 0 {
		return 0, domain.NewValidationError("missing required fields", missing...)
	}

	pickup, ok := calc.ParseISODate(req.PickupDate)
	if !ok {
		return 0, domain.NewValidationError("invalid date format, expected yyyy-mm-dd", "pickup_date")
	}
	expected, ok := calc.ParseISODate(req.ExpectedReturnDate)
	if !ok {
		return 0, domain.NewValidationError("invalid date format, expected yyyy-mm-dd", "expected_return_date")
	}
	if expected.Before(pickup) {
		return 0, domain.NewValidationError("expected_return_date cannot precede pickup_date", "expected_return_date")
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, req.Plate)
	if err != nil {
		return 0, err
	}

	if vehicle.MaintenanceID != nil {
		unresolved, err := s.vehicleRepo.HasUnresolvedMaintenance(ctx, *vehicle.MaintenanceID, s.today())
		if err != nil {
			return 0, err
		}
		if unresolved {
			return 0, fmt.Errorf("vehicle %s is under maintenance: %w", req.Plate, domain.ErrConflict)
		}
	}

	open, err := s.rentalRepo.HasOpenByPlate(ctx, req.Plate)
	if err != nil {
		return 0, err
	}
	if open {
		return 0, fmt.Errorf("vehicle %s already has an open rental: %w", req.Plate, domain.ErrConflict)
	}

	rental := &domain.Rental{
		Plate:              req.Plate,
		CustomerID:         req.CustomerID,
		EmployeeID:         req.EmployeeID,
		PickupDate:         &pickup,
		ExpectedReturnDate: expected,
		PredictedPrice:     calc.ParseCurrency(req.PredictedPrice),
		PredictedMileage:   req.PredictedMileage,
		Accessories:        req.Accessories,
	}
	if err := s.rentalRepo.CreateWithHistory(ctx, rental); err != nil {
		return 0, err
	}

	logger.Info("rental opened", "rental_id", rental.ID, "plate", rental.Plate, "customer_id", rental.CustomerID)
	return rental.ID, nil
}

func (s *rentalService) CheckIn(ctx context.Context, rentalID int32, req *domain.CheckInRequest) (*domain.SettlementSummary, error) {
	var missing []string
	if req.VehicleCondition == "" {
		missing = append(missing, "vehicle_condition")
	}
	if req.FuelComplete == nil {
		missing = append(missing, "fuel_complete")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("missing required fields", missing...)
	}

	detail, err := s.rentalRepo.GetOpenDetail(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	fuelComplete := *req.FuelComplete

	// Base charge: actual days elapsed since pickup, minimum one day.
	daysRented := 1
	if pickup, ok := calc.ToDate(detail.PickupDate); ok {
		if d := calc.DaysBetween(pickup, today); d > daysRented {
			daysRented = d
		}
	} else {
		logger.Warn("rental has no usable pickup date, charging one day", "rental_id", rentalID)
	}
	baseAmount := detail.DailyRate * float64(daysRented)

	var fines []domain.Fine
	var totalFines float64
	addFine := func(t domain.FineType, amount float64, note string) {
		if amount > 0 {
			fines = append(fines, domain.Fine{Type: t, Amount: amount, ReferenceNote: note})
			totalFines += amount
		}
	}

	lateAmount, daysLate := calc.LateReturnFine(detail.ExpectedReturnDate, today, detail.DailyRate)
	addFine(domain.FineTypeLate, lateAmount, fmt.Sprintf("%d days late", daysLate))

	addFine(domain.FineTypeFuel, calc.FuelFine(fuelComplete), "fuel tank not full")

	damageAmount := calc.DamageFine(req.DamageCost)
	addFine(domain.FineTypeDamage, damageAmount, fmt.Sprintf("reported damage of %.2f", damageAmount))

	if req.OdometerReading != nil {
		mileageAmount, excess := calc.MileageFine(detail.PredictedMileage, *req.OdometerReading)
		addFine(domain.FineTypeMileage, mileageAmount, fmt.Sprintf("%.0f km over predicted mileage", excess))
	}

	discounts, totalDiscounts := s.discounts.Evaluate(ctx, detail, today)

	finalAmount := baseAmount + totalFines - totalDiscounts
	if finalAmount < 0 {
		finalAmount = 0
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	settlement := &domain.Settlement{
		RentalID: rentalID,
		Plate:    detail.Plate,
		Payment: domain.Payment{
			Reference:     uuid.NewString(),
			TotalAmount:   finalAmount,
			PaymentMethod: paymentMethod,
		},
		FuelComplete:     fuelComplete,
		VehicleCondition: req.VehicleCondition,
		ActualReturnDate: today,
		Fines:            fines,
		Discounts:        discounts,
		VehicleStatus:    domain.VehicleStatusAvailable,
	}

	if calc.ConditionIndicatesDamage(req.VehicleCondition) || damageAmount > 0 {
		description := fmt.Sprintf("maintenance required: %s", req.VehicleCondition)
		if damageAmount > 0 {
			description = fmt.Sprintf("maintenance for reported damage of %.2f", damageAmount)
		}
		settlement.Maintenance = &domain.Maintenance{
			Plate:       detail.Plate,
			Cost:        damageAmount,
			StartDate:   today,
			Description: description,
		}
		settlement.VehicleStatus = domain.VehicleStatusMaintenance
	}

	paymentID, maintenanceID, err := s.rentalRepo.SettleReturn(ctx, settlement)
	if err != nil {
		return nil, err
	}

	summary := &domain.SettlementSummary{
		PaymentID:        paymentID,
		PaymentReference: settlement.Payment.Reference,
		BaseAmount:       baseAmount,
		Fines:            fines,
		TotalFines:       totalFines,
		Discounts:        discounts,
		TotalDiscounts:   totalDiscounts,
		FinalAmount:      finalAmount,
		DaysRented:       daysRented,
		DaysLate:         daysLate,
		ActualReturnDate: today,
		VehicleStatus:    settlement.VehicleStatus,
		MaintenanceID:    maintenanceID,
	}

	logger.Info("rental settled",
		"rental_id", rentalID,
		"payment_id", paymentID,
		"final_amount", finalAmount,
		"vehicle_status", settlement.VehicleStatus)

	s.sendReceipt(detail, summary)

	return summary, nil
}

// sendReceipt emails the settlement receipt when the customer has an email
// on file. Failures are logged, never surfaced to the caller.
func (s *rentalService) sendReceipt(detail *domain.RentalDetail, summary *domain.SettlementSummary) {
	if s.emailSvc == nil || detail.CustomerID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		customer, err := s.customerRepo.GetByID(ctx, detail.CustomerID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger.Warn("receipt skipped, customer lookup failed", "customer_id", detail.CustomerID, "error", err)
			}
			return
		}
		if customer.Email == "" {
			return
		}
		if err := s.emailSvc.SendSettlementReceipt(ctx, customer.Email, customer.Name, detail.Plate, summary); err != nil {
			logger.Warn("receipt email failed", "customer_id", detail.CustomerID, "error", err)
		}
	}()
}

func (s *rentalService) GetDetail(ctx context.Context, rentalID int32) (*domain.RentalDetail, error) {
	return s.rentalRepo.GetDetail(ctx, rentalID)
}

func (s *rentalService) ListOpen(ctx context.Context) ([]domain.OpenRental, error) {
	return s.rentalRepo.ListOpen(ctx)
}

func (s *rentalService) OpenByPlate(ctx context.Context, plate string) (*domain.OpenRentalByPlate, error) {
	return s.rentalRepo.OpenByPlate(ctx, plate)
}

func (s *rentalService) ExpectedReturnDate(ctx context.Context, rentalID int32) (time.Time, error) {
	return s.rentalRepo.ExpectedReturnDate(ctx, rentalID)
}

func (s *rentalService) FinesForRental(ctx context.Context, rentalID int32) ([]domain.Fine, error) {
	return s.paymentRepo.FinesForRental(ctx, rentalID)
}

func (s *rentalService) DiscountsForRental(ctx context.Context, rentalID int32) ([]domain.Discount, error) {
	return s.paymentRepo.DiscountsForRental(ctx, rentalID)
}

func (s *rentalService) FinesByCustomer(ctx context.Context, customerID string) ([]domain.CustomerFine, error) {
	return s.historyRepo.FinesByCustomer(ctx, customerID)
}

func (s *rentalService) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
