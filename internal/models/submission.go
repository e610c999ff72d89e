package models

import "time"

// Submission statuses.
const (
	// SubmissionStatusPending marks a submission awaiting review.
	SubmissionStatusPending = "pending"
	// SubmissionStatusApproved marks a reviewed submission that earned points.
	SubmissionStatusApproved = "approved"
	// SubmissionStatusRejected marks a reviewed submission that earned nothing.
	SubmissionStatusRejected = "rejected"
)

// Submission is uploaded evidence of an eco-action.
type Submission struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;index" json:"user_id"`                          // Submitting user.
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Submitting user record.

	Filename    string `gorm:"type:text;not null" json:"filename"`                // Stored object key.
	Description string `gorm:"type:text;not null" json:"description"`             // What the evidence shows.
	Status      string `gorm:"type:text;not null;default:pending" json:"status"`  // pending, approved or rejected.
	Points      int    `gorm:"not null;default:0" json:"points"`                  // Points awarded on approval.

	SubmittedAt time.Time  `gorm:"not null;autoCreateTime" json:"submitted_at"` // Upload timestamp.
	ReviewedAt  *time.Time `json:"reviewed_at"`                                 // When an admin acted on it.
}
