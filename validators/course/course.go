package courseValidator

import (
	"strconv"
	"strings"

	"skillcert/middleware"
	"skillcert/progression"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a positive integer route parameter into c.Locals
func paramID(param, local, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return paramID("id", "courseID", "Course ID")
}

func LevelID() fiber.Handler {
	return paramID("level_id", "levelID", "Level ID")
}

func ContentID() fiber.Handler {
	return paramID("content_id", "contentID", "Content ID")
}

func EnrollmentID() fiber.Handler {
	return paramID("enrollment_id", "enrollmentID", "Enrollment ID")
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// SubmitProgress parses the submission body: either a watch percentage
// or a set of answers, never both.
func SubmitProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(progression.Submission)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WatchPercent == nil && len(reqData.Answers) == 0 {
			errors["submission"] = "Either watch_percent or answers is required!"
		}
		if reqData.WatchPercent != nil && len(reqData.Answers) > 0 {
			errors["submission"] = "Provide watch_percent or answers, not both!"
		}
		if reqData.WatchPercent != nil && (*reqData.WatchPercent < 0 || *reqData.WatchPercent > 100) {
			errors["watch_percent"] = "Watch percent must be between 0 and 100!"
		}
		for _, ans := range reqData.Answers {
			if ans.QuestionID == 0 || ans.OptionID == 0 {
				errors["answers"] = "Each answer needs a question_id and an option_id!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
