// Package rewards implements the reward-claim lifecycle. A claim is created
// pending with its cost already deducted; admins move it to approved, shipped
// or rejected, and only the first transition into rejected refunds the cost.
package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/ledger"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Claim errors.
var (
	// ErrRewardNotFound indicates an unknown or inactive catalog entry.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrInsufficientPoints indicates the user cannot afford the reward.
	ErrInsufficientPoints = ledger.ErrInsufficientPoints
	// ErrOutOfStock indicates a tracked-stock reward with nothing left.
	ErrOutOfStock = errors.New("reward out of stock")
	// ErrClaimNotFound indicates an unknown claim id.
	ErrClaimNotFound = errors.New("claim not found")
)

// Claim deducts the reward cost from the user and records a pending claim.
// The deduction, stock decrement and claim insert commit or roll back as one
// unit.
func Claim(ctx context.Context, db *gorm.DB, userID, rewardID uint64, shippingInfo string) (*models.RewardClaim, error) {
	var created models.RewardClaim
	errTx := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reward models.Reward
		if errFind := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND active = ?", rewardID, true).
			First(&reward).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return ErrRewardNotFound
			}
			return fmt.Errorf("rewards: load reward: %w", errFind)
		}

		if reward.Stock == 0 {
			return ErrOutOfStock
		}
		if reward.Stock > 0 {
			if errStock := tx.Model(&reward).
				UpdateColumn("stock", gorm.Expr("stock - 1")).Error; errStock != nil {
				return fmt.Errorf("rewards: decrement stock: %w", errStock)
			}
		}

		if errDebit := ledger.Debit(tx, userID, reward.PointsRequired); errDebit != nil {
			return errDebit
		}

		created = models.RewardClaim{
			UserID:       userID,
			RewardID:     reward.ID,
			Status:       models.ClaimStatusPending,
			ShippingInfo: shippingInfo,
		}
		if errCreate := tx.Create(&created).Error; errCreate != nil {
			return fmt.Errorf("rewards: create claim: %w", errCreate)
		}
		created.Reward = &reward
		return nil
	})
	if errTx != nil {
		return nil, errTx
	}
	return &created, nil
}

// Approve marks a pending claim accepted. No point effect; the cost was
// already deducted at claim time.
func Approve(ctx context.Context, db *gorm.DB, claimID uint64) error {
	return review(ctx, db, claimID, models.ClaimStatusApproved)
}

// Ship marks a claim fulfilled. Reachable from pending as well as approved;
// digital rewards routinely skip the approved stage.
func Ship(ctx context.Context, db *gorm.DB, claimID uint64) error {
	return review(ctx, db, claimID, models.ClaimStatusShipped)
}

func review(ctx context.Context, db *gorm.DB, claimID uint64, status string) error {
	res := db.WithContext(ctx).Model(&models.RewardClaim{}).
		Where("id = ?", claimID).
		Updates(map[string]any{
			"status":      status,
			"reviewed_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("rewards: update claim: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrClaimNotFound
	}
	return nil
}

// Reject marks a claim rejected and refunds its cost to the claiming user in
// the same transaction. A claim already rejected is left alone so the refund
// can never be paid twice; an unknown id updates nothing.
func Reject(ctx context.Context, db *gorm.DB, claimID uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var claim models.RewardClaim
		if errFind := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&claim, claimID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				// Matches the historical behavior: rejecting an unknown
				// claim is a silent no-op.
				return nil
			}
			return fmt.Errorf("rewards: load claim: %w", errFind)
		}

		if claim.Status == models.ClaimStatusRejected {
			return nil
		}

		var reward models.Reward
		if errFind := tx.First(&reward, claim.RewardID).Error; errFind != nil {
			return fmt.Errorf("rewards: load reward: %w", errFind)
		}

		if errCredit := ledger.Credit(tx, claim.UserID, reward.PointsRequired,
			fmt.Sprintf("Refund for rejected claim: %s", reward.Name)); errCredit != nil {
			return errCredit
		}

		if errUpdate := tx.Model(&claim).Updates(map[string]any{
			"status":      models.ClaimStatusRejected,
			"reviewed_at": time.Now().UTC(),
		}).Error; errUpdate != nil {
			return fmt.Errorf("rewards: update claim: %w", errUpdate)
		}
		return nil
	})
}
