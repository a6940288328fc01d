package controllers

import (
	"skillcert/database"
	"skillcert/middleware"
	courseModels "skillcert/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses for workers
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	query := db.Order("created_at desc")
	page, limit := 1, int(total)
	if ok {
		page = *reqData.Page
		limit = *reqData.Limit
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails gets a published course with its purchasable levels
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?",
		courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var levels []courseModels.CourseLevel
	database.Database.Db.Where("course_id = ? AND is_deleted = ? AND is_published = ?",
		courseID, false, true).Order("level_index asc").Find(&levels)

	// Attach the worker's enrollment per level, if any
	type LevelWithEnrollment struct {
		courseModels.CourseLevel
		Enrollment *courseModels.Enrollment `json:"enrollment,omitempty"`
	}

	result := make([]LevelWithEnrollment, len(levels))
	for i, level := range levels {
		result[i] = LevelWithEnrollment{CourseLevel: level}

		var enrollment courseModels.Enrollment
		if err := database.Database.Db.Where("user_id = ? AND course_level_id = ?", userID, level.ID).
			Order("created_at desc").First(&enrollment).Error; err == nil {
			result[i].Enrollment = &enrollment
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course": course,
		"levels": result,
	})
}

// GetUserEnrollmentsList gets all enrollments for the current worker
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithLevel struct {
		courseModels.Enrollment
		LevelTitle  string `json:"level_title"`
		CourseTitle string `json:"course_title"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithLevel, len(enrollments))
	for i, e := range enrollments {
		result[i] = EnrollmentWithLevel{Enrollment: e}

		var level courseModels.CourseLevel
		if err := database.Database.Db.Where("id = ?", e.CourseLevelID).First(&level).Error; err == nil {
			result[i].LevelTitle = level.Title

			var course courseModels.Course
			if err := database.Database.Db.Where("id = ?", level.CourseID).First(&course).Error; err == nil {
				result[i].CourseTitle = course.Title
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
