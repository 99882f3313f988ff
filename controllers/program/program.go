package programController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"arc/database"
	"arc/middleware"
	"arc/models"
	"arc/utils"
	programValidator "arc/validators/program"
)

// ListPrograms returns all programs, newest first
func ListPrograms(c *fiber.Ctx) error {
	var programs []models.Program
	if err := database.Database.Db.
		Order("created_at desc").
		Find(&programs).Error; err != nil {
		log.Printf("Failed to fetch programs: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", programs)
}

// GetProgram returns one program by id
func GetProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Program not found")
	}

	var program models.Program
	if err := database.Database.Db.
		Where("id = ?", programID).
		First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Program not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", program)
}

// CreateProgram creates a tenant program. The handle is sanitized before the
// duplicate check and the insert; the unique index on handle is the
// authoritative guard, the pre-check only gives a friendlier early exit.
func CreateProgram(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgram").(*programValidator.CreateProgramRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	handle := utils.SanitizeHandle(reqData.Handle)
	if handle == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Handle must contain at least one alphanumeric character")
	}

	var existing models.Program
	if err := database.Database.Db.
		Select("id").
		Where("handle = ?", handle).
		Take(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Handle already exists")
	}

	branding := datatypes.JSON([]byte("{}"))
	if len(reqData.Branding) > 0 {
		branding = datatypes.JSON(reqData.Branding)
	}

	program := models.Program{
		Name:          reqData.Name,
		Handle:        handle,
		PerkProgramID: reqData.PerkProgramID,
		ApiKey:        reqData.ApiKey,
		Branding:      branding,
		IsActive:      true,
		Settings:      datatypes.JSON([]byte("{}")),
	}

	if err := database.Database.Db.Create(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Handle already exists")
		}
		log.Printf("Failed to create program: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("Program created: %s (%s)", program.Name, program.Handle)

	return middleware.JsonResponse(c, fiber.StatusOK, "Program created successfully", program)
}

// PerkStatus checks the program's stored rewards-ledger credentials
func PerkStatus(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Program not found")
	}

	var program models.Program
	if err := database.Database.Db.
		Where("id = ?", programID).
		First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Program not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	perk := utils.NewPerkClient(program.PerkProgramID, program.ApiKey)
	if err := perk.Ping(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, "", fiber.Map{
			"program_id": program.ID,
			"reachable":  false,
			"error":      err.Error(),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", fiber.Map{
		"program_id": program.ID,
		"reachable":  true,
	})
}
