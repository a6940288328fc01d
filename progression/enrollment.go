package progression

import (
	"errors"
	"time"

	courseModels "skillcert/models/course"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// ErrAlreadyEnrolled is returned when the worker already holds an
// active enrollment for the level.
var ErrAlreadyEnrolled = errors.New("an active enrollment already exists for this level")

// CreateEnrollment is the boundary consumed from order approval: one
// call per approved level purchase. It atomically creates the ACTIVE
// enrollment and the full progress ledger for the level's content
// sequence, with only the first item unlocked.
func CreateEnrollment(db *gorm.DB, userID, courseLevelID uint) (*courseModels.Enrollment, error) {
	var level courseModels.CourseLevel
	if err := db.Where("id = ? AND is_deleted = ?", courseLevelID, false).First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	var items []courseModels.ContentItem
	if err := db.Where("course_level_id = ? AND is_deleted = ? AND is_published = ?",
		courseLevelID, false, true).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrContentNotFound
	}

	var enrollment *courseModels.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		var active courseModels.Enrollment
		err := tx.Where("user_id = ? AND course_level_id = ? AND status = ?",
			userID, courseLevelID, courseModels.EnrollmentActive).First(&active).Error
		if err == nil {
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		startedAt := time.Now()
		deadline := now.With(startedAt.AddDate(0, 0, level.DurationDays)).EndOfDay()

		created := courseModels.Enrollment{
			UserID:        userID,
			CourseLevelID: courseLevelID,
			Status:        courseModels.EnrollmentActive,
			StartedAt:     startedAt,
			DeadlineAt:    deadline,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		records := make([]courseModels.ProgressRecord, len(items))
		for i, item := range items {
			status := courseModels.ProgressLocked
			if i == 0 {
				status = courseModels.ProgressUnlocked
			}
			records[i] = courseModels.ProgressRecord{
				EnrollmentID:  created.ID,
				ContentItemID: item.ID,
				Status:        status,
			}
		}
		if err := tx.Create(&records).Error; err != nil {
			return err
		}

		enrollment = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}
