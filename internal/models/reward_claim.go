package models

import "time"

// Reward claim statuses.
const (
	// ClaimStatusPending is the initial claim state.
	ClaimStatusPending = "pending"
	// ClaimStatusApproved marks a claim accepted by an admin.
	ClaimStatusApproved = "approved"
	// ClaimStatusShipped marks a claim fulfilled.
	ClaimStatusShipped = "shipped"
	// ClaimStatusRejected marks a claim denied; points are refunded.
	ClaimStatusRejected = "rejected"
)

// RewardClaim records one redemption request. Points are deducted exactly once
// at creation and refunded exactly once if the claim is rejected.
type RewardClaim struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;index" json:"user_id"`                          // Claiming user.
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Claiming user record.

	RewardID uint64  `gorm:"not null;index" json:"reward_id"` // Claimed catalog entry.
	Reward   *Reward `gorm:"foreignKey:RewardID" json:"-"`    // Claimed catalog record.

	Status       string `gorm:"type:text;not null;default:pending" json:"status"` // pending, approved, shipped or rejected.
	ShippingInfo string `gorm:"type:text" json:"shipping_info"`                   // Free-form delivery details.

	ClaimedAt  time.Time  `gorm:"not null;autoCreateTime" json:"claimed_at"` // When the claim was created.
	ReviewedAt *time.Time `json:"reviewed_at"`                               // When an admin acted on it.
}
