package course

import "gorm.io/gorm"

// Question belongs to an ASSESSABLE content item
type Question struct {
	gorm.Model
	ContentItemID uint             `json:"content_item_id" gorm:"index;not null"`
	Text          string           `json:"text"`
	Points        int              `json:"points" gorm:"default:10"`
	OrderIndex    int              `json:"order_index" gorm:"default:0"`
	Options       []QuestionOption `json:"options" gorm:"foreignKey:QuestionID"`
	IsDeleted     bool             `gorm:"default:false"`
}

// QuestionOption represents one selectable option of a question
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
