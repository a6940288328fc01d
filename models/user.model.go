package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'WORKER'"` // WORKER, SUPERVISOR, ADMIN
	Password            string `gorm:"not null"`
	CompanyID           *uint  `gorm:"index"`
	Designation         string
	IsEmailVerified     bool       `gorm:"default:false"`
	LastLogin           *time.Time `gorm:"default:NULL"`
	FailedLoginAttempts int        `gorm:"default:0"`
	IsBlocked           bool       `gorm:"default:false"`
	IsDeleted           bool       `gorm:"default:false"`
}
