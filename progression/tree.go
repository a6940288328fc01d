package progression

import (
	"errors"

	courseModels "skillcert/models/course"

	"gorm.io/gorm"
)

// TreeItem combines one content item with its progress state and, for
// ASSESSABLE items, the question set with the correct flags stripped.
type TreeItem struct {
	courseModels.ContentItem
	ProgressStatus string                  `json:"progress_status"`
	AttemptsUsed   int                     `json:"attempts_used"`
	LastScore      *int                    `json:"last_score"`
	Questions      []courseModels.Question `json:"questions,omitempty"`
}

// ContentTree returns the enrollment and its ordered content sequence
// with per-item progress, shaped for the learner UI to render
// locked/unlocked/completed affordances.
func ContentTree(db *gorm.DB, enrollmentID uint) (*courseModels.Enrollment, []TreeItem, error) {
	var enrollment courseModels.Enrollment
	if err := db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEnrollmentNotFound
		}
		return nil, nil, err
	}

	var items []courseModels.ContentItem
	if err := db.Where("course_level_id = ? AND is_deleted = ? AND is_published = ?",
		enrollment.CourseLevelID, false, true).Order("position asc").Find(&items).Error; err != nil {
		return nil, nil, err
	}

	var records []courseModels.ProgressRecord
	if err := db.Where("enrollment_id = ?", enrollment.ID).Find(&records).Error; err != nil {
		return nil, nil, err
	}
	recordByItem := make(map[uint]courseModels.ProgressRecord, len(records))
	for _, r := range records {
		recordByItem[r.ContentItemID] = r
	}

	tree := make([]TreeItem, len(items))
	for i, item := range items {
		tree[i] = TreeItem{
			ContentItem:    item,
			ProgressStatus: courseModels.ProgressLocked,
		}
		if record, ok := recordByItem[item.ID]; ok {
			tree[i].ProgressStatus = record.Status
			tree[i].AttemptsUsed = record.AttemptsUsed
			tree[i].LastScore = record.LastScore
		}

		if item.Kind == courseModels.KindAssessable {
			var questions []courseModels.Question
			if err := db.Preload("Options", "is_deleted = ?", false).
				Where("content_item_id = ? AND is_deleted = ?", item.ID, false).
				Order("order_index asc").Find(&questions).Error; err != nil {
				return nil, nil, err
			}
			// Never leak the answer key to learners.
			for qi := range questions {
				for oi := range questions[qi].Options {
					questions[qi].Options[oi].IsCorrect = false
				}
			}
			tree[i].Questions = questions
		}
	}

	return &enrollment, tree, nil
}
