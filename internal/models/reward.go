package models

import "time"

// Reward type values.
const (
	// RewardTypePhysical marks rewards that need shipping.
	RewardTypePhysical = "physical"
	// RewardTypeDigital marks rewards delivered in-app.
	RewardTypeDigital = "digital"
)

// UnlimitedStock is the stock value meaning no stock tracking.
const UnlimitedStock = -1

// Reward is a redeemable catalog entry.
type Reward struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name           string `gorm:"type:text;not null" json:"name"`                     // Display name.
	Description    string `gorm:"type:text" json:"description"`                       // Catalog description.
	PointsRequired int    `gorm:"not null" json:"points_required"`                    // Redemption cost, always > 0.
	Category       string `gorm:"type:text;not null" json:"category"`                 // Catalog grouping.
	Type           string `gorm:"type:text;not null;default:physical" json:"type"`    // physical or digital.
	Stock          int    `gorm:"not null;default:-1" json:"stock"`                   // Remaining stock; -1 means unlimited.
	Active         bool   `gorm:"not null;default:true" json:"active"`                // Whether the reward can be claimed.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}

// TableName keeps the historical catalog table name.
func (Reward) TableName() string { return "available_rewards" }
