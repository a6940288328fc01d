package controllers

import (
	"skillcert/database"
	"skillcert/middleware"
	courseModels "skillcert/models/course"
	validators "skillcert/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateContent adds a content item to a level's sequence
func AdminCreateContent(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(int)

	var level courseModels.CourseLevel
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", levelID, false).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*validators.ContentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	item := courseModels.ContentItem{
		CourseLevelID:      uint(levelID),
		Title:              reqData.Title,
		Description:        reqData.Description,
		Kind:               reqData.Kind,
		Position:           reqData.Position,
		VideoURL:           reqData.VideoURL,
		MinWatchPercent:    reqData.MinWatchPercent,
		PassingScore:       reqData.PassingScore,
		MaxAttempts:        reqData.MaxAttempts,
		IsEligibilityCheck: reqData.IsEligibilityCheck,
		IsFinalExam:        reqData.IsFinalExam,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", item)
}

// AdminUpdateContent updates a content item's grading parameters
func AdminUpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var item courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData := new(struct {
		Title           *string `json:"title"`
		Description     *string `json:"description"`
		Position        *int    `json:"position"`
		VideoURL        *string `json:"video_url"`
		MinWatchPercent *int    `json:"min_watch_percent"`
		PassingScore    *int    `json:"passing_score"`
		MaxAttempts     *int    `json:"max_attempts"`
		IsFinalExam     *bool   `json:"is_final_exam"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Position != nil {
		updates["position"] = *reqData.Position
	}
	if reqData.VideoURL != nil {
		updates["video_url"] = *reqData.VideoURL
	}
	if reqData.MinWatchPercent != nil {
		updates["min_watch_percent"] = *reqData.MinWatchPercent
	}
	if reqData.PassingScore != nil {
		updates["passing_score"] = *reqData.PassingScore
	}
	if reqData.MaxAttempts != nil {
		updates["max_attempts"] = *reqData.MaxAttempts
	}
	if reqData.IsFinalExam != nil {
		updates["is_final_exam"] = *reqData.IsFinalExam
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&item).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", item)
}

// AdminPublishContent publishes a content item into the live sequence
func AdminPublishContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var item courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if err := database.Database.Db.Model(&item).Update("is_published", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content published successfully!", item)
}

// AdminListContent lists a level's content sequence in order
func AdminListContent(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(int)

	var items []courseModels.ContentItem
	if err := database.Database.Db.Where("course_level_id = ? AND is_deleted = ?", levelID, false).
		Order("position asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", items)
}

// AdminAddQuestion adds a question with its options to an ASSESSABLE item
func AdminAddQuestion(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var item courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if item.Kind != courseModels.KindAssessable {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content is not assessable!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*validators.QuestionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	question := courseModels.Question{
		ContentItemID: uint(contentID),
		Text:          reqData.Text,
		Points:        reqData.Points,
		OrderIndex:    reqData.OrderIndex,
	}
	for _, opt := range reqData.Options {
		question.Options = append(question.Options, courseModels.QuestionOption{
			Text:       opt.Text,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: opt.OrderIndex,
		})
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminListQuestions lists an item's questions with the answer key
func AdminListQuestions(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var questions []courseModels.Question
	if err := database.Database.Db.Preload("Options", "is_deleted = ?", false).
		Where("content_item_id = ? AND is_deleted = ?", contentID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}
