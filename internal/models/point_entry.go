package models

import "time"

// PointEntry is one record in the append-only points ledger. Entries are never
// updated; they are deleted only when the owning account is reset or removed.
type PointEntry struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;index" json:"user_id"`           // Owning user.
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Owning user record.

	Points      int    `gorm:"not null" json:"points"`          // Magnitude of the credited event.
	Description string `gorm:"type:text" json:"description"`    // What earned the points.

	EarnedAt time.Time `gorm:"not null;autoCreateTime" json:"earned_at"` // When the event happened.
}

// TableName keeps the historical table name for earned-point events.
func (PointEntry) TableName() string { return "rewards" }
