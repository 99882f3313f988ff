package activityValidator

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"arc/generation"
	"arc/middleware"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateActivityRequest is the validated body for activity creation.
// PointsValue is a pointer so an explicit 0 passes while a missing field fails.
type CreateActivityRequest struct {
	Title           string          `json:"title" validate:"required"`
	Type            string          `json:"type" validate:"required"`
	ProgramID       string          `json:"program_id" validate:"required"`
	PointsValue     *int            `json:"points_value" validate:"required"`
	ActionTitle     string          `json:"action_title" validate:"required"`
	Description     *string         `json:"description"`
	Config          json.RawMessage `json:"config"`
	Styling         json.RawMessage `json:"styling"`
	AiGenerated     bool            `json:"ai_generated"`
	AiPrompt        *string         `json:"ai_prompt"`
	Status          string          `json:"status"`
	CompletionLimit *int            `json:"completion_limit"`
	Slug            string          `json:"slug"`
}

// CreateActivity validates an activity creation request
func CreateActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateActivityRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.TrimSpace(reqData.Type)
		reqData.ActionTitle = strings.TrimSpace(reqData.ActionTitle)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedActivity", reqData)
		return c.Next()
	}
}

// GenerateActivity validates a generation request. The type itself is checked
// against the template catalog by the generation service.
func GenerateActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(generation.Request)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Type == "" || reqData.Title == "" || reqData.Prompt == "" || reqData.ProgramID == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields")
		}

		c.Locals("validatedGeneration", reqData)
		return c.Next()
	}
}
