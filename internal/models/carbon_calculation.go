package models

import "time"

// CarbonCalculation stores one detailed footprint calculation.
type CarbonCalculation struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;index" json:"user_id"`                          // Calculating user.
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Calculating user record.

	TotalFootprint     float64 `gorm:"not null" json:"total_footprint"` // Tons CO2 per year.
	TransportEmissions float64 `json:"transport_emissions"`             // Transport share.
	EnergyEmissions    float64 `json:"energy_emissions"`                // Home energy share.
	FoodEmissions      float64 `json:"food_emissions"`                  // Diet share.
	LifestyleEmissions float64 `json:"lifestyle_emissions"`             // Consumption share.

	CalculatedAt time.Time `gorm:"not null;autoCreateTime" json:"calculated_at"` // Calculation timestamp.
}
