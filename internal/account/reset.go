// Package account implements the destructive full account reset.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"gorm.io/gorm"
)

// ErrUserNotFound indicates the username does not exist.
var ErrUserNotFound = errors.New("user not found")

// Reset wipes every dependent row for the named user and restores the account
// to a fresh state with the given password. Irreversible; everything happens
// in one transaction so a failure leaves the account untouched.
func Reset(ctx context.Context, db *gorm.DB, username, newPassword string) error {
	hash, errHash := security.HashPassword(newPassword)
	if errHash != nil {
		return fmt.Errorf("account: hash password: %w", errHash)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if errFind := tx.Where("username = ?", username).First(&user).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("account: load user: %w", errFind)
		}

		for _, model := range []any{
			&models.QuizResult{},
			&models.PointEntry{},
			&models.Submission{},
			&models.RewardClaim{},
			&models.CarbonCalculation{},
			&models.WeeklyGame{},
		} {
			if errDelete := tx.Where("user_id = ?", user.ID).Delete(model).Error; errDelete != nil {
				return fmt.Errorf("account: delete dependents: %w", errDelete)
			}
		}

		if errUpdate := tx.Model(&user).Updates(map[string]any{
			"password":  hash,
			"points":    0,
			"level":     1,
			"suspended": false,
		}).Error; errUpdate != nil {
			return fmt.Errorf("account: reset user: %w", errUpdate)
		}
		return nil
	})
}

// Delete removes a user and all dependent rows in one transaction.
func Delete(ctx context.Context, db *gorm.DB, userID uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.QuizResult{},
			&models.PointEntry{},
			&models.Submission{},
			&models.RewardClaim{},
			&models.CarbonCalculation{},
			&models.WeeklyGame{},
		} {
			if errDelete := tx.Where("user_id = ?", userID).Delete(model).Error; errDelete != nil {
				return fmt.Errorf("account: delete dependents: %w", errDelete)
			}
		}
		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return fmt.Errorf("account: delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
