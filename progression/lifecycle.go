package progression

import (
	"time"

	courseModels "skillcert/models/course"

	"gorm.io/gorm"
)

// The enrollment lifecycle: ACTIVE is the only state these transitions
// leave. Each one is a guarded update on status = ACTIVE, so repeated
// calls on an already-terminal enrollment are no-ops rather than
// errors (callers may deliver at least once).

// Complete marks an active enrollment COMPLETED, stamps the completion
// time and issues the certificate in the same transaction.
func Complete(tx *gorm.DB, enrollmentID uint) error {
	res := tx.Model(&courseModels.Enrollment{}).
		Where("id = ? AND status = ?", enrollmentID, courseModels.EnrollmentActive).
		Updates(map[string]interface{}{
			"status":       courseModels.EnrollmentCompleted,
			"completed_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil // already terminal
	}

	var enrollment courseModels.Enrollment
	if err := tx.First(&enrollment, enrollmentID).Error; err != nil {
		return err
	}
	_, err := IssueCertificate(tx, enrollment)
	return err
}

// Fail marks an active enrollment FAILED with the given reason. No
// certificate.
func Fail(tx *gorm.DB, enrollmentID uint, reason string) error {
	res := tx.Model(&courseModels.Enrollment{}).
		Where("id = ? AND status = ?", enrollmentID, courseModels.EnrollmentActive).
		Updates(map[string]interface{}{
			"status":       courseModels.EnrollmentFailed,
			"completed_at": time.Now(),
			"fail_reason":  reason,
		})
	return res.Error
}

// Expire marks an active enrollment EXPIRED. Triggered lazily from a
// late submission or by the periodic sweep.
func Expire(tx *gorm.DB, enrollmentID uint) error {
	res := tx.Model(&courseModels.Enrollment{}).
		Where("id = ? AND status = ?", enrollmentID, courseModels.EnrollmentActive).
		Update("status", courseModels.EnrollmentExpired)
	return res.Error
}

// ExpireOverdue expires every active enrollment whose deadline has
// passed and returns exactly the enrollments this sweep transitioned.
// Select and update share one transaction with the rows locked, so an
// enrollment crossing its deadline mid-sweep is never expired without
// showing up in the returned set. Called by the scheduler.
func ExpireOverdue(db *gorm.DB) ([]courseModels.Enrollment, error) {
	var overdue []courseModels.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("status = ? AND deadline_at < ?", courseModels.EnrollmentActive, time.Now()).
			Find(&overdue).Error; err != nil {
			return err
		}
		if len(overdue) == 0 {
			return nil
		}

		ids := make([]uint, len(overdue))
		for i, enrollment := range overdue {
			ids[i] = enrollment.ID
		}
		return tx.Model(&courseModels.Enrollment{}).
			Where("id IN ? AND status = ?", ids, courseModels.EnrollmentActive).
			Update("status", courseModels.EnrollmentExpired).Error
	})
	if err != nil {
		return nil, err
	}
	return overdue, nil
}
