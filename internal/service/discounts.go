package service

import (
	"context"
	"time"

	"carrental-backend/internal/calc"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

const (
	loyaltyDiscountAmount        = 50.00
	earlyBookingDiscountAmount   = 30.00
	cleanRecordDiscountAmount    = 40.00
	allCategoriesDiscountAmount  = 60.00
	allAccessoriesDiscountAmount = 45.00

	loyaltyRentalThreshold = 5
	earlyBookingLeadDays   = 7
	cleanRecordWindowSize  = 5
)

// discountEngine evaluates the customer-history discount rules. Rules never
// escalate repository faults: a failing rule contributes zero and logs the
// anomaly so one broken rule cannot abort a settlement.
type discountEngine struct {
	history repository.HistoryRepository
}

func newDiscountEngine(history repository.HistoryRepository) *discountEngine {
	return &discountEngine{history: history}
}

// Evaluate runs all discount rules for the rental being settled and returns
// the non-zero line items plus their sum.
func (e *discountEngine) Evaluate(ctx context.Context, detail *domain.RentalDetail, today time.Time) ([]domain.Discount, float64) {
	var discounts []domain.Discount
	var total float64

	add := func(t domain.DiscountType, amount float64) {
		if amount > 0 {
			discounts = append(discounts, domain.Discount{Type: t, Amount: amount})
			total += amount
		}
	}

	add(domain.DiscountTypeLoyalty, e.loyalty(ctx, detail.CustomerID))
	add(domain.DiscountTypeEarlyBooking, e.earlyBooking(detail, today))
	add(domain.DiscountTypeCleanRecord, e.cleanRecord(ctx, detail.CustomerID, detail.ID))
	add(domain.DiscountTypeAllCategories, e.allCategories(ctx, detail.CustomerID))
	add(domain.DiscountTypeAllAccessories, e.allAccessories(ctx, detail.CustomerID))

	return discounts, total
}

// loyalty grants a flat discount once the customer has reached five
// rentals, the one being settled included.
func (e *discountEngine) loyalty(ctx context.Context, customerID string) float64 {
	if customerID == "" {
		return 0
	}
	total, err := e.history.CountRentalsByCustomer(ctx, customerID)
	if err != nil {
		logger.Warn("loyalty discount skipped", "customer_id", customerID, "error", err)
		return 0
	}
	if total >= loyaltyRentalThreshold {
		return loyaltyDiscountAmount
	}
	return 0
}

// earlyBooking compares today with the pickup date. The schema keeps no
// reservation timestamp, so "today" stands in for the booking date; the
// rule only pays out while the pickup is still at least a week away.
func (e *discountEngine) earlyBooking(detail *domain.RentalDetail, today time.Time) float64 {
	pickup, ok := calc.ToDate(detail.PickupDate)
	if !ok {
		return 0
	}
	if calc.DaysBetween(today, pickup) >= earlyBookingLeadDays {
		return earlyBookingDiscountAmount
	}
	return 0
}

// cleanRecord requires at least five prior rentals and no fine on any of
// the five most recent ones. Fewer than five priors means no evaluation,
// not partial credit.
func (e *discountEngine) cleanRecord(ctx context.Context, customerID string, currentRentalID int32) float64 {
	if customerID == "" {
		return 0
	}
	recent, err := e.history.RecentRentalIDs(ctx, customerID, currentRentalID, cleanRecordWindowSize)
	if err != nil {
		logger.Warn("clean-record discount skipped", "customer_id", customerID, "error", err)
		return 0
	}
	if len(recent) < cleanRecordWindowSize {
		return 0
	}
	for _, rentalID := range recent {
		fined, err := e.history.RentalHasFines(ctx, rentalID)
		if err != nil {
			logger.Warn("clean-record discount skipped", "rental_id", rentalID, "error", err)
			return 0
		}
		if fined {
			return 0
		}
	}
	return cleanRecordDiscountAmount
}

func (e *discountEngine) allCategories(ctx context.Context, customerID string) float64 {
	if customerID == "" {
		return 0
	}
	used, err := e.history.CountDistinctCategoriesUsed(ctx, customerID)
	if err != nil {
		logger.Warn("all-categories discount skipped", "customer_id", customerID, "error", err)
		return 0
	}
	total, err := e.history.CountCategories(ctx)
	if err != nil {
		logger.Warn("all-categories discount skipped", "customer_id", customerID, "error", err)
		return 0
	}
	if total > 0 && used == total {
		return allCategoriesDiscountAmount
	}
	return 0
}

func (e *discountEngine) allAccessories(ctx context.Context, customerID string) float64 {
	if customerID == "" {
		return 0
	}
	used, err := e.history.CountDistinctAccessoriesUsed(ctx, customerID)
	if err != nil {
		logger.Warn("all-accessories discount skipped", "customer_id", customerID, "error", err)
		return 0
	}
	total, err := e.history.CountAccessories(ctx)
	if err != nil {
		logger.Warn("all-accessories discount skipped", "customer_id", customerID, "error", err)
		return 0
	}
	if total > 0 && used == total {
		return allAccessoriesDiscountAmount
	}
	return 0
}
