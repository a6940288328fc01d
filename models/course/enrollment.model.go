package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. ACTIVE is the only non-terminal state; terminal
// statuses never revert.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentFailed    = "FAILED"
	EnrollmentExpired   = "EXPIRED"
)

// Failure reasons recorded on the enrollment
const (
	FailReasonAttemptsExceeded = "ATTEMPTS_EXCEEDED"
)

// Enrollment tracks one worker's paid attempt at one course level.
// Created when a level purchase is approved; never deleted.
type Enrollment struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	CourseLevelID uint       `json:"course_level_id" gorm:"index;not null"`
	Status        string     `json:"status" gorm:"default:'ACTIVE'"`
	StartedAt     time.Time  `json:"started_at"`
	DeadlineAt    time.Time  `json:"deadline_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	FailReason    string     `json:"fail_reason"`
}
