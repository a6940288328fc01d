package models

import (
	"time"

	"gorm.io/gorm"
)

// Order represents a worker's purchase of one course level. An approved
// order is the trigger that creates an enrollment.
type Order struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	CourseLevelID uint   `gorm:"index;not null"`
	Amount        uint   `gorm:"not null"`
	PaymentRef    string `json:"payment_ref"`
	Status        string `gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	ApprovedAt    *time.Time
	ApprovedBy    *uint
	RejectReason  string
	EnrollmentID  *uint `gorm:"index"` // set once approval created the enrollment
	IsDeleted     bool  `gorm:"default:false"`
}
