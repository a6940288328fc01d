package progression

import (
	"errors"
	"strings"
	"time"

	courseModels "skillcert/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCertificate creates the certificate for a completed enrollment.
// At-most-once: if one already exists for the enrollment the existing
// certificate is returned unchanged, so retried completions are safe.
func IssueCertificate(tx *gorm.DB, enrollment courseModels.Enrollment) (*courseModels.Certificate, error) {
	var existing courseModels.Certificate
	err := tx.Where("enrollment_id = ?", enrollment.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	certificate := courseModels.Certificate{
		EnrollmentID:  enrollment.ID,
		UserID:        enrollment.UserID,
		CourseLevelID: enrollment.CourseLevelID,
		Code:          newCertificateCode(),
		IssuedAt:      time.Now(),
	}
	if err := tx.Create(&certificate).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

// CertificateByEnrollment returns the certificate issued for an
// enrollment, or ErrEnrollmentNotFound when none exists.
func CertificateByEnrollment(db *gorm.DB, enrollmentID uint) (*courseModels.Certificate, error) {
	var certificate courseModels.Certificate
	if err := db.Where("enrollment_id = ?", enrollmentID).First(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &certificate, nil
}

// CertificatesByUser returns all certificates issued to a worker,
// newest first.
func CertificatesByUser(db *gorm.DB, userID uint) ([]courseModels.Certificate, error) {
	var certificates []courseModels.Certificate
	if err := db.Where("user_id = ?", userID).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

func newCertificateCode() string {
	return "CERT-" + strings.ToUpper(uuid.NewString())
}
