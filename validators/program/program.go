package programValidator

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

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

// CreateProgramRequest is the validated body for program creation
type CreateProgramRequest struct {
	Name          string          `json:"name" validate:"required"`
	Handle        string          `json:"handle" validate:"required"`
	PerkProgramID string          `json:"perk_program_id" validate:"required"`
	ApiKey        string          `json:"api_key" validate:"required"`
	Branding      json.RawMessage `json:"branding"`
}

// CreateProgram validates a program creation request
func CreateProgram() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProgramRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Handle = strings.TrimSpace(reqData.Handle)
		reqData.PerkProgramID = strings.TrimSpace(reqData.PerkProgramID)
		reqData.ApiKey = strings.TrimSpace(reqData.ApiKey)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgram", reqData)
		return c.Next()
	}
}
