package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for a completed
// enrollment. At most one per enrollment; immutable once created.
type Certificate struct {
	gorm.Model
	EnrollmentID  uint      `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	CourseLevelID uint      `json:"course_level_id" gorm:"index;not null"`
	Code          string    `json:"code" gorm:"unique;not null"`
	IssuedAt      time.Time `json:"issued_at"`
}
