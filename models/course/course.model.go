package course

import "gorm.io/gorm"

// Course represents a certification course
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// CourseLevel represents one purchasable level within a course. A worker
// enrolls in levels one at a time; each level carries its own ordered
// content sequence.
type CourseLevel struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title"`
	LevelIndex   int    `json:"level_index" gorm:"default:1"` // Level order in course
	Price        uint   `json:"price" gorm:"default:0"`
	DurationDays int    `json:"duration_days" gorm:"default:30"` // enrollment deadline window
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
