// Package games implements the weekly activity gate: each mini-game can be
// completed at most once per user per ISO week.
package games

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/ledger"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"gorm.io/gorm"
)

// CompletionPoints is the credit for finishing a weekly mini-game.
const CompletionPoints = 5

// Gate errors.
var (
	// ErrInvalidGameType indicates an unrecognized game identifier.
	ErrInvalidGameType = errors.New("invalid game type")
	// ErrAlreadyPlayed indicates the game was already completed this week.
	ErrAlreadyPlayed = errors.New("already played this week")
)

// validGameTypes lists the recognized weekly mini-games.
var validGameTypes = map[string]bool{
	"plant-tracker": true,
	"recycle-quest": true,
	"energy-saver":  true,
}

// ValidGameType reports whether gameType names a known mini-game.
func ValidGameType(gameType string) bool {
	return validGameTypes[gameType]
}

// WeekOf buckets a timestamp into an ISO-8601 week. The ISO year is returned
// alongside the week number so completions straddling Dec 31/Jan 1 land in the
// same bucket on both sides of the boundary.
func WeekOf(t time.Time) (year, week int) {
	year, week = t.UTC().ISOWeek()
	return year, week
}

// Complete records a game completion and credits its points, atomically. A
// second completion of the same game in the same week fails with
// ErrAlreadyPlayed and changes nothing.
func Complete(ctx context.Context, db *gorm.DB, userID uint64, gameType string, now time.Time) error {
	if !ValidGameType(gameType) {
		return ErrInvalidGameType
	}
	year, week := WeekOf(now)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if errCount := tx.Model(&models.WeeklyGame{}).
			Where("user_id = ? AND game_type = ? AND week_number = ? AND year = ?",
				userID, gameType, week, year).
			Count(&count).Error; errCount != nil {
			return fmt.Errorf("games: check gate: %w", errCount)
		}
		if count > 0 {
			return ErrAlreadyPlayed
		}

		record := models.WeeklyGame{
			UserID:     userID,
			GameType:   gameType,
			WeekNumber: week,
			Year:       year,
		}
		if errCreate := tx.Create(&record).Error; errCreate != nil {
			return fmt.Errorf("games: record completion: %w", errCreate)
		}

		return ledger.Credit(tx, userID, CompletionPoints,
			fmt.Sprintf("Completed weekly %s game", gameType))
	})
}
