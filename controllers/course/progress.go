package controllers

import (
	"errors"

	"skillcert/database"
	"skillcert/middleware"
	"skillcert/models"
	courseModels "skillcert/models/course"
	"skillcert/progression"
	"skillcert/utils"

	"github.com/gofiber/fiber/v2"
)

// GetContentTree returns the enrollment's ordered content sequence with
// per-item progress state, for the learner UI
func GetContentTree(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	enrollment, tree, err := progression.ContentTree(database.Database.Db, uint(enrollmentID))
	if err != nil {
		if errors.Is(err, progression.ErrEnrollmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content tree!", nil)
	}

	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment belongs to another user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content tree fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"items":      tree,
	})
}

// SubmitProgress applies one watch or quiz submission to an enrollment's
// content item and reports the resulting progress and enrollment status
func SubmitProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	contentID := c.Locals("contentID").(int)

	submission, ok := c.Locals("validatedSubmission").(*progression.Submission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Ownership check before touching the engine
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment belongs to another user!", nil)
	}

	result, err := progression.SubmitProgress(database.Database.Db, uint(enrollmentID), uint(contentID), *submission)
	if err != nil {
		status, message := progressionErrorResponse(err)
		return middleware.JsonResponse(c, status, false, message, nil)
	}

	// Completion fires a certificate inside the engine transaction;
	// notify the worker once it is durable.
	if result.EnrollmentStatus == courseModels.EnrollmentCompleted {
		var user models.User
		if err := database.Database.Db.First(&user, userID).Error; err == nil {
			if cert, err := progression.CertificateByEnrollment(database.Database.Db, uint(enrollmentID)); err == nil {
				utils.SendCertificateIssuedEmail(user.Email, user.Name, cert.Code)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress submitted!", result)
}

// progressionErrorResponse translates engine error kinds into HTTP
// statuses and instructional messages
func progressionErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, progression.ErrEnrollmentNotFound):
		return fiber.StatusNotFound, "Enrollment not found!"
	case errors.Is(err, progression.ErrContentNotFound):
		return fiber.StatusNotFound, "Content not found!"
	case errors.Is(err, progression.ErrEnrollmentExpired):
		return fiber.StatusGone, "Enrollment deadline has passed. Re-enrollment required!"
	case errors.Is(err, progression.ErrEnrollmentNotActive):
		return fiber.StatusConflict, "Enrollment is no longer active. Re-enrollment required!"
	case errors.Is(err, progression.ErrItemLocked):
		return fiber.StatusForbidden, "Complete the earlier content first!"
	case errors.Is(err, progression.ErrAlreadyCompleted):
		return fiber.StatusConflict, "Content already completed!"
	case errors.Is(err, progression.ErrMissingAnswer):
		return fiber.StatusBadRequest, "Submission is incomplete or malformed!"
	default:
		return fiber.StatusInternalServerError, "Failed to submit progress!"
	}
}
