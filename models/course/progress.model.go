package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress record statuses. For a given enrollment the set of
// UNLOCKED/IN_PROGRESS/COMPLETED records always forms a prefix of the
// content item ordering.
const (
	ProgressLocked     = "LOCKED"
	ProgressUnlocked   = "UNLOCKED"
	ProgressInProgress = "IN_PROGRESS"
	ProgressCompleted  = "COMPLETED"
	ProgressFailed     = "FAILED"
)

// ProgressRecord holds per-enrollment, per-content-item unlock and
// completion state. Exactly one row per (enrollment, item) pair,
// created alongside the enrollment; never deleted.
type ProgressRecord struct {
	gorm.Model
	EnrollmentID  uint       `json:"enrollment_id" gorm:"index:idx_progress_pair,unique;not null"`
	ContentItemID uint       `json:"content_item_id" gorm:"index:idx_progress_pair,unique;not null"`
	Status        string     `json:"status" gorm:"default:'LOCKED'"`
	AttemptsUsed  int        `json:"attempts_used" gorm:"default:0"`
	LastScore     *int       `json:"last_score"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// SubmissionLog keeps the raw history of every submission attempt, in
// the order they were scored.
type SubmissionLog struct {
	gorm.Model
	EnrollmentID  uint           `json:"enrollment_id" gorm:"index;not null"`
	ContentItemID uint           `json:"content_item_id" gorm:"index;not null"`
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	Payload       datatypes.JSON `json:"payload"` // raw submitted watch data or answers
	Achieved      int            `json:"achieved"`
	Passed        bool           `json:"passed" gorm:"default:false"`
}
