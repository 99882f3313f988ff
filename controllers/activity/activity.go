package activityController

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"arc/database"
	"arc/generation"
	"arc/middleware"
	"arc/models"
	"arc/utils"
	activityValidator "arc/validators/activity"
)

// Generator produces activity content. Swappable so a provider-backed
// implementation can replace the mock without touching handlers.
var Generator generation.Service

func generator() generation.Service {
	if Generator != nil {
		return Generator
	}
	return generation.NewMockService(database.Database.Db)
}

// withProgram limits the joined program to its public display fields
func withProgram(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "handle")
}

// ListActivities returns all activities with their program, newest first
func ListActivities(c *fiber.Ctx) error {
	var activities []models.Activity
	if err := database.Database.Db.
		Preload("Program", withProgram).
		Order("created_at desc").
		Find(&activities).Error; err != nil {
		log.Printf("Failed to fetch activities: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", activities)
}

// GetActivity returns one activity by id
func GetActivity(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Activity not found")
	}

	var activity models.Activity
	if err := database.Database.Db.
		Preload("Program", withProgram).
		Where("id = ?", activityID).
		First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Activity not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", activity)
}

// ListProgramActivities returns all activities for one program, newest first
func ListProgramActivities(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Program not found")
	}

	var activities []models.Activity
	if err := database.Database.Db.
		Where("program_id = ?", programID).
		Order("created_at desc").
		Find(&activities).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", activities)
}

// CreateActivity creates an activity under a program. The slug is derived
// from the title when not supplied; a per-program collision gets a millisecond
// timestamp suffix, with the composite unique index as the real guard.
func CreateActivity(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedActivity").(*activityValidator.CreateActivityRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	programID, err := uuid.Parse(reqData.ProgramID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid program ID")
	}

	slug := reqData.Slug
	if slug == "" {
		slug = utils.DeriveSlug(reqData.Title)
	}

	var existing models.Activity
	if err := database.Database.Db.
		Select("id").
		Where("program_id = ? AND slug = ?", programID, slug).
		Take(&existing).Error; err == nil {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}

	status := reqData.Status
	if status == "" {
		status = models.ActivityStatusDraft
	}

	var publishedAt *time.Time
	if status == models.ActivityStatusPublished {
		now := time.Now()
		publishedAt = &now
	}

	completionLimit := 1
	if reqData.CompletionLimit != nil {
		completionLimit = *reqData.CompletionLimit
	}

	config := datatypes.JSON([]byte("{}"))
	if len(reqData.Config) > 0 {
		config = datatypes.JSON(reqData.Config)
	}
	styling := datatypes.JSON([]byte("{}"))
	if len(reqData.Styling) > 0 {
		styling = datatypes.JSON(reqData.Styling)
	}

	activity := models.Activity{
		ProgramID:       programID,
		Type:            reqData.Type,
		Slug:            slug,
		Title:           reqData.Title,
		Description:     reqData.Description,
		Config:          config,
		Styling:         styling,
		AiGenerated:     reqData.AiGenerated,
		AiPrompt:        reqData.AiPrompt,
		Status:          status,
		PublishedAt:     publishedAt,
		PointsValue:     *reqData.PointsValue,
		ActionTitle:     reqData.ActionTitle,
		CompletionLimit: completionLimit,
	}

	log.Printf("Creating activity %q (%s) for program %s, status %s", activity.Title, activity.Type, programID, status)

	if err := database.Database.Db.Create(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Slug already exists for this program")
		}
		log.Printf("Failed to create activity: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	// Return the created record joined with its program
	if err := database.Database.Db.
		Preload("Program", withProgram).
		First(&activity, "id = ?", activity.ID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Activity created successfully", activity)
}

// GenerateActivity fills the type's prompt template and returns a structured
// payload for the review step of the creation wizard
func GenerateActivity(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGeneration").(*generation.Request)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	payload, err := generator().Generate(*reqData)
	if err != nil {
		if errors.Is(err, generation.ErrMissingField) || errors.Is(err, generation.ErrUnsupportedType) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("Activity generation failed: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Activity generated successfully", payload)
}
