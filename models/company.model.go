package models

import "gorm.io/gorm"

// Company represents an employer that enrolls its workers in training
type Company struct {
	gorm.Model
	Name           string `gorm:"not null"`
	RegistrationNo string `json:"registration_no"`
	ContactEmail   string
	ContactPhone   string
	Address        string
	City           string
	State          string
	IsActive       bool   `gorm:"default:true"`
	IsDeleted      bool   `gorm:"default:false"`
}
