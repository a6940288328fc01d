package courseValidator

import (
	"strings"

	"skillcert/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ContentPayload is the admin payload for creating a content item
type ContentPayload struct {
	Title              string `json:"title" validate:"required,min=3"`
	Description        string `json:"description"`
	Kind               string `json:"kind" validate:"required,oneof=WATCHABLE ASSESSABLE"`
	Position           int    `json:"position" validate:"gte=0"`
	VideoURL           string `json:"video_url"`
	MinWatchPercent    int    `json:"min_watch_percent" validate:"gte=0,lte=100"`
	PassingScore       int    `json:"passing_score" validate:"gte=0,lte=100"`
	MaxAttempts        int    `json:"max_attempts" validate:"omitempty,gte=1"`
	IsEligibilityCheck bool   `json:"is_eligibility_check"`
	IsFinalExam        bool   `json:"is_final_exam"`
}

// QuestionPayload is the admin payload for creating a question with options
type QuestionPayload struct {
	Text       string          `json:"text" validate:"required"`
	Points     int             `json:"points" validate:"gte=1"`
	OrderIndex int             `json:"order_index" validate:"gte=0"`
	Options    []OptionPayload `json:"options" validate:"required,min=2,dive"`
}

type OptionPayload struct {
	Text       string `json:"text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

// validationErrors flattens validator.v10 errors into the usual
// field -> message map
func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Failed validation: " + fe.Tag()
		}
	} else {
		errors["body"] = err.Error()
	}
	return errors
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CreateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			LevelIndex   int    `json:"level_index"`
			Price        uint   `json:"price"`
			DurationDays int    `json:"duration_days"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.LevelIndex < 1 {
			errors["level_index"] = "Level index must be greater than 0!"
		}
		if reqData.DurationDays < 1 {
			errors["duration_days"] = "Duration days must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLevel", reqData)
		return c.Next()
	}
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuestionPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		// Exactly one correct option keeps scoring unambiguous
		correct := 0
		for _, opt := range reqData.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"options": "Exactly one option must be marked correct!",
			})
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
