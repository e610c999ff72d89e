package models

import "time"

// User represents a registered player account.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Username string `gorm:"type:text;not null;uniqueIndex" json:"username"` // Unique login name.
	Email    string `gorm:"type:text;not null;uniqueIndex" json:"email"`    // Unique contact address.
	Password string `gorm:"type:text;not null" json:"-"`                    // Hashed password.

	Points    int  `gorm:"not null;default:0" json:"points"`        // Current balance; mutated only through the ledger.
	Level     int  `gorm:"not null;default:1" json:"level"`         // Progression level.
	Suspended bool `gorm:"not null;default:false" json:"suspended"` // Suspended accounts cannot sign in.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Registration timestamp.
}
