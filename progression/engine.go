package progression

import (
	"encoding/json"
	"errors"
	"time"

	courseModels "skillcert/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result reports the outcome of one progress submission.
type Result struct {
	ItemStatus       string `json:"item_status"`
	EnrollmentStatus string `json:"enrollment_status"`
	Achieved         int    `json:"achieved"`
	Passed           bool   `json:"passed"`
	AttemptsUsed     int    `json:"attempts_used"`
}

// SubmitProgress applies one learner submission to an enrollment's
// content item. The whole operation runs in a single transaction with
// the enrollment row locked, so two concurrent submissions for the
// same enrollment are serialized; submissions for different
// enrollments proceed in parallel.
func SubmitProgress(db *gorm.DB, enrollmentID, contentItemID uint, sub Submission) (*Result, error) {
	var result *Result
	var lazyExpired bool

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment courseModels.Enrollment
		if err := lockForUpdate(tx).First(&enrollment, enrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEnrollmentNotFound
			}
			return err
		}

		// Lazy expiry: a submission past the deadline expires the
		// enrollment instead of being scored. Returning the sentinel
		// from inside the callback would roll the transition back, so
		// the callback commits and the sentinel is raised afterwards.
		if enrollment.Status == courseModels.EnrollmentActive && time.Now().After(enrollment.DeadlineAt) {
			lazyExpired = true
			return Expire(tx, enrollment.ID)
		}

		switch enrollment.Status {
		case courseModels.EnrollmentActive:
		case courseModels.EnrollmentExpired:
			return ErrEnrollmentExpired
		default:
			return ErrEnrollmentNotActive
		}

		var item courseModels.ContentItem
		if err := tx.Where("id = ? AND course_level_id = ? AND is_deleted = ?",
			contentItemID, enrollment.CourseLevelID, false).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}

		var record courseModels.ProgressRecord
		if err := tx.Where("enrollment_id = ? AND content_item_id = ?",
			enrollment.ID, item.ID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}

		// Sequencing guarantee: no submissions against items that an
		// earlier item still gates.
		if record.Status == courseModels.ProgressLocked {
			return ErrItemLocked
		}
		if record.Status == courseModels.ProgressCompleted {
			return ErrAlreadyCompleted
		}

		var questions []courseModels.Question
		if item.Kind == courseModels.KindAssessable {
			if err := tx.Preload("Options", "is_deleted = ?", false).
				Where("content_item_id = ? AND is_deleted = ?", item.ID, false).
				Order("order_index asc").Find(&questions).Error; err != nil {
				return err
			}
		}

		achieved, passed, err := Evaluate(item, questions, sub)
		if err != nil {
			return err
		}

		record.AttemptsUsed++
		record.LastScore = &achieved

		payload, err := json.Marshal(sub)
		if err != nil {
			return err
		}
		attempt := courseModels.SubmissionLog{
			EnrollmentID:  enrollment.ID,
			ContentItemID: item.ID,
			AttemptNumber: record.AttemptsUsed,
			Payload:       datatypes.JSON(payload),
			Achieved:      achieved,
			Passed:        passed,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		enrollmentStatus := enrollment.Status

		if passed {
			completedAt := time.Now()
			record.Status = courseModels.ProgressCompleted
			record.CompletedAt = &completedAt
			if err := tx.Save(&record).Error; err != nil {
				return err
			}

			var next courseModels.ContentItem
			hasNext := true
			if err := tx.Where("course_level_id = ? AND position > ? AND is_deleted = ? AND is_published = ?",
				enrollment.CourseLevelID, item.Position, false, true).
				Order("position asc").First(&next).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				hasNext = false
			}

			if hasNext {
				// Guarded update: only a LOCKED record may flip to
				// UNLOCKED, so a double unlock is impossible.
				if err := tx.Model(&courseModels.ProgressRecord{}).
					Where("enrollment_id = ? AND content_item_id = ? AND status = ?",
						enrollment.ID, next.ID, courseModels.ProgressLocked).
					Update("status", courseModels.ProgressUnlocked).Error; err != nil {
					return err
				}
			}

			if !hasNext || item.IsFinalExam {
				if err := Complete(tx, enrollment.ID); err != nil {
					return err
				}
				enrollmentStatus = courseModels.EnrollmentCompleted
			}
		} else {
			// WATCHABLE items carry no attempt limit; a failed watch
			// just stays retryable.
			if item.Kind == courseModels.KindWatchable || record.AttemptsUsed < item.MaxAttempts {
				record.Status = courseModels.ProgressInProgress
				if err := tx.Save(&record).Error; err != nil {
					return err
				}
			} else {
				record.Status = courseModels.ProgressFailed
				if err := tx.Save(&record).Error; err != nil {
					return err
				}
				if err := Fail(tx, enrollment.ID, courseModels.FailReasonAttemptsExceeded); err != nil {
					return err
				}
				enrollmentStatus = courseModels.EnrollmentFailed
			}
		}

		result = &Result{
			ItemStatus:       record.Status,
			EnrollmentStatus: enrollmentStatus,
			Achieved:         achieved,
			Passed:           passed,
			AttemptsUsed:     record.AttemptsUsed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lazyExpired {
		return nil, ErrEnrollmentExpired
	}
	return result, nil
}

// lockForUpdate takes a row lock where the dialect supports it. SQLite
// (used in tests) has no FOR UPDATE; its writes are serialized by the
// database itself.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
