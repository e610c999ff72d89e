// Package ledger implements the points ledger: every change to a user's
// balance goes through Credit or Debit, and credits always pair the balance
// update with one append-only ledger entry. Both primitives expect to run
// inside a caller-owned transaction so the triggering record (quiz result,
// game completion, claim, ...) commits or rolls back together with the
// balance change.
package ledger

import (
	"errors"
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"gorm.io/gorm"
)

// Ledger errors.
var (
	// ErrInsufficientPoints indicates a debit larger than the current balance.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrUserNotFound indicates the target user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidAmount indicates a non-positive credit or debit amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Credit increments the user's balance and appends one ledger entry.
func Credit(tx *gorm.DB, userID uint64, points int, description string) error {
	if points <= 0 {
		return ErrInvalidAmount
	}

	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", points))
	if res.Error != nil {
		return fmt.Errorf("ledger: credit balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	entry := models.PointEntry{
		UserID:      userID,
		Points:      points,
		Description: description,
	}
	if errCreate := tx.Create(&entry).Error; errCreate != nil {
		return fmt.Errorf("ledger: append entry: %w", errCreate)
	}
	return nil
}

// Debit decrements the user's balance. The guard in the WHERE clause is what
// keeps balances non-negative under concurrent requests.
func Debit(tx *gorm.DB, userID uint64, points int) error {
	if points <= 0 {
		return ErrInvalidAmount
	}

	res := tx.Model(&models.User{}).
		Where("id = ? AND points >= ?", userID, points).
		UpdateColumn("points", gorm.Expr("points - ?", points))
	if res.Error != nil {
		return fmt.Errorf("ledger: debit balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if errCount := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; errCount != nil {
			return fmt.Errorf("ledger: debit lookup: %w", errCount)
		}
		if count == 0 {
			return ErrUserNotFound
		}
		return ErrInsufficientPoints
	}
	return nil
}
