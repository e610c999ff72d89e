package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizResult stores one completed carbon-footprint quiz.
type QuizResult struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;index" json:"user_id"`                          // Quiz taker.
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Quiz taker record.

	Score           int            `gorm:"not null" json:"score"`            // Summed option scores.
	CarbonFootprint float64        `gorm:"not null" json:"carbon_footprint"` // Estimated tons CO2 per year.
	Answers         datatypes.JSON `gorm:"type:jsonb" json:"answers"`        // Selected option indexes.

	CompletedAt time.Time `gorm:"not null;autoCreateTime" json:"completed_at"` // Completion timestamp.
}
