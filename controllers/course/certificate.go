package controllers

import (
	"errors"

	"skillcert/database"
	"skillcert/middleware"
	courseModels "skillcert/models/course"
	"skillcert/progression"

	"github.com/gofiber/fiber/v2"
)

// GetUserCertificates gets all certificates for the current worker
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates, err := progression.CertificatesByUser(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	type CertificateWithLevel struct {
		courseModels.Certificate
		LevelTitle  string `json:"level_title"`
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithLevel, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateWithLevel{Certificate: cert}

		var level courseModels.CourseLevel
		if err := database.Database.Db.Where("id = ?", cert.CourseLevelID).First(&level).Error; err == nil {
			result[i].LevelTitle = level.Title

			var course courseModels.Course
			if err := database.Database.Db.Where("id = ?", level.CourseID).First(&course).Error; err == nil {
				result[i].CourseTitle = course.Title
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// GetEnrollmentCertificate looks up the certificate for one enrollment
func GetEnrollmentCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment belongs to another user!", nil)
	}

	certificate, err := progression.CertificateByEnrollment(database.Database.Db, uint(enrollmentID))
	if err != nil {
		if errors.Is(err, progression.ErrEnrollmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No certificate issued for this enrollment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", certificate)
}
