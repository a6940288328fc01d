package course

import "gorm.io/gorm"

// Content item kinds
const (
	KindWatchable  = "WATCHABLE"  // video content, graded by watch percentage
	KindAssessable = "ASSESSABLE" // quiz content, graded by answer score
)

// ContentItem represents one unit of course material within a level,
// ordered by Position. Read-only from the progression engine's side;
// only course authoring writes it.
type ContentItem struct {
	gorm.Model
	CourseLevelID uint   `json:"course_level_id" gorm:"index;not null"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Kind          string `json:"kind" gorm:"not null"` // WATCHABLE, ASSESSABLE
	Position      int    `json:"position" gorm:"default:0"`
	VideoURL      string `json:"video_url"` // For WATCHABLE kind

	// Grading parameters
	MinWatchPercent int `json:"min_watch_percent" gorm:"default:90"` // WATCHABLE pass threshold
	PassingScore    int `json:"passing_score" gorm:"default:70"`     // ASSESSABLE pass threshold (0-100)
	MaxAttempts     int `json:"max_attempts" gorm:"default:3"`       // ASSESSABLE attempt limit

	IsEligibilityCheck bool `json:"is_eligibility_check" gorm:"default:false"` // gates entry into the level
	IsFinalExam        bool `json:"is_final_exam" gorm:"default:false"`        // completion finishes the enrollment
	IsPublished        bool `json:"is_published" gorm:"default:false"`
	IsDeleted          bool `gorm:"default:false"`
}
