package domain

import "time"

type FineType string

const (
	FineTypeLate    FineType = "LATE"
	FineTypeFuel    FineType = "FUEL"
	FineTypeDamage  FineType = "DAMAGE"
	FineTypeMileage FineType = "MILEAGE"
)

type Fine struct {
	Type          FineType `json:"type"`
	Amount        float64  `json:"amount"`
	ReferenceNote string   `json:"reference_note,omitempty"`
}

type DiscountType string

const (
	DiscountTypeLoyalty        DiscountType = "LOYALTY"
	DiscountTypeEarlyBooking   DiscountType = "EARLY_BOOKING"
	DiscountTypeCleanRecord    DiscountType = "CLEAN_RECORD"
	DiscountTypeAllCategories  DiscountType = "ALL_CATEGORIES"
	DiscountTypeAllAccessories DiscountType = "ALL_ACCESSORIES"
)

type Discount struct {
	Type   DiscountType `json:"type"`
	Amount float64      `json:"amount"`
}

type Payment struct {
	ID            int32   `json:"id"`
	Reference     string  `json:"reference"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
}

type Maintenance struct {
	ID          int32      `json:"id"`
	Plate       string     `json:"plate"`
	Cost        float64    `json:"cost"`
	StartDate   time.Time  `json:"start_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
	Description string     `json:"description"`
}

// Settlement is the unit of work persisted at check-in. Everything in it
// must land atomically: payment, return, line items, optional maintenance
// dispatch and the vehicle status transition.
type Settlement struct {
	RentalID         int32
	Plate            string
	Payment          Payment
	FuelComplete     bool
	VehicleCondition string
	ActualReturnDate time.Time
	Fines            []Fine
	Discounts        []Discount
	Maintenance      *Maintenance
	VehicleStatus    VehicleStatus
}

// SettlementSummary is the structured result of a check-in.
type SettlementSummary struct {
	PaymentID        int32         `json:"payment_id"`
	PaymentReference string        `json:"payment_reference"`
	BaseAmount       float64       `json:"base_amount"`
	Fines            []Fine        `json:"fines"`
	TotalFines       float64       `json:"total_fines"`
	Discounts        []Discount    `json:"discounts"`
	TotalDiscounts   float64       `json:"total_discounts"`
	FinalAmount      float64       `json:"final_amount"`
	DaysRented       int           `json:"days_rented"`
	DaysLate         int           `json:"days_late,omitempty"`
	ActualReturnDate time.Time     `json:"actual_return_date"`
	VehicleStatus    VehicleStatus `json:"vehicle_status"`
	MaintenanceID    *int32        `json:"maintenance_id,omitempty"`
}

// CustomerFine is a fine joined with the rental it was charged on, used by
// the per-customer fine history query.
type CustomerFine struct {
	Fine
	RentalID     int32      `json:"rental_id"`
	PickupDate   *time.Time `json:"pickup_date,omitempty"`
	VehicleModel string     `json:"vehicle_model,omitempty"`
}
