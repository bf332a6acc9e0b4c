package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

type Vehicle struct {
	Plate         string        `json:"plate"`
	Model         string        `json:"model"`
	CategoryType  string        `json:"category_type"`
	Status        VehicleStatus `json:"status"`
	MaintenanceID *int32        `json:"maintenance_id,omitempty"`
}

// Category is static reference data; DailyRate drives both the base charge
// and the late-return fine.
type Category struct {
	Type      string  `json:"type"`
	DailyRate float64 `json:"daily_rate"`
}
