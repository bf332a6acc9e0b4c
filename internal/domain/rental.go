package domain

import "time"

// Rental is a vehicle checkout. It stays open until a Return row exists for
// it; once returned it is immutable.
type Rental struct {
	ID                 int32      `json:"id"`
	Plate              string     `json:"plate"`
	CustomerID         string     `json:"customer_id,omitempty"`
	EmployeeID         int32      `json:"employee_id"`
	PickupDate         *time.Time `json:"pickup_date,omitempty"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	PredictedPrice     float64    `json:"predicted_price"`
	PredictedMileage   *float64   `json:"predicted_mileage,omitempty"`
	Accessories        []string   `json:"accessories,omitempty"`
	CreatedOn          time.Time  `json:"created_on"`
}

// RentalDetail is a Rental joined with its vehicle's category pricing.
type RentalDetail struct {
	Rental
	CategoryType string  `json:"category_type"`
	DailyRate    float64 `json:"daily_rate"`
}

// Return closes a Rental. Its existence is what marks the rental settled;
// returns.rental_id carries a UNIQUE constraint so a rental can be settled
// at most once even under concurrent check-ins.
type Return struct {
	RentalID         int32     `json:"rental_id"`
	PaymentID        int32     `json:"payment_id"`
	FuelComplete     bool      `json:"fuel_complete"`
	VehicleCondition string    `json:"vehicle_condition"`
	ActualReturnDate time.Time `json:"actual_return_date"`
}

// OpenRental is the projection used by the open-rentals listing.
type OpenRental struct {
	RentalID   int32  `json:"rental_id"`
	Plate      string `json:"plate"`
	CustomerID string `json:"customer_id,omitempty"`
}

// OpenRentalByPlate is the projection returned when looking up the active
// rental for a plate.
type OpenRentalByPlate struct {
	RentalID           int32     `json:"rental_id"`
	PredictedPrice     float64   `json:"predicted_price"`
	ExpectedReturnDate time.Time `json:"expected_return_date"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CheckoutRequest carries the checkout fields as received from the HTTP
// layer. Dates are ISO yyyy-mm-dd strings; PredictedPrice accepts locale
// currency text ("R$ 1.234,56").
type CheckoutRequest struct {
	Plate              string   `json:"plate"`
	CustomerID         string   `json:"customer_id,omitempty"`
	EmployeeID         int32    `json:"employee_id"`
	PickupDate         string   `json:"pickup_date"`
	ExpectedReturnDate string   `json:"expected_return_date"`
	PredictedPrice     string   `json:"predicted_price,omitempty"`
	PredictedMileage   *float64 `json:"predicted_mileage,omitempty"`
	Accessories        []string `json:"accessories,omitempty"`
}

// CheckInRequest carries the check-in fields. DamageCost is untyped on
// purpose: callers send numbers or free text and non-numeric input counts
// as no damage charge.
type CheckInRequest struct {
	VehicleCondition string   `json:"vehicle_condition"`
	FuelComplete     *bool    `json:"fuel_complete"`
	DamageCost       any      `json:"damage_cost,omitempty"`
	OdometerReading  *float64 `json:"odometer_reading,omitempty"`
	PaymentMethod    string   `json:"payment_method,omitempty"`
}
