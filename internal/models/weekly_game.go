package models

import "time"

// WeeklyGame records one weekly mini-game completion. The composite unique
// index is what enforces the once-per-week gate.
type WeeklyGame struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;uniqueIndex:idx_weekly_games_once" json:"user_id"`              // Playing user.
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`                 // Playing user record.

	GameType   string `gorm:"type:text;not null;uniqueIndex:idx_weekly_games_once" json:"game_type"` // Mini-game identifier.
	WeekNumber int    `gorm:"not null;uniqueIndex:idx_weekly_games_once" json:"week_number"`          // ISO week number.
	Year       int    `gorm:"not null;uniqueIndex:idx_weekly_games_once" json:"year"`                 // ISO week year.

	CompletedAt time.Time `gorm:"not null;autoCreateTime" json:"completed_at"` // Completion timestamp.
}
