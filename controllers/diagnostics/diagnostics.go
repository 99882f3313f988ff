package diagnosticsController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"arc/database"
	"arc/middleware"
	"arc/models"
)

// TestConnection verifies store connectivity: a sample of program rows plus
// total counts. Intended for deployment smoke checks, not the dashboard.
func TestConnection(c *fiber.Ctx) error {
	db := database.Database.Db

	var samplePrograms []struct {
		Handle string `json:"handle"`
		Name   string `json:"name"`
	}
	if err := db.Model(&models.Program{}).
		Select("handle", "name").
		Limit(3).
		Scan(&samplePrograms).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalPrograms, totalActivities int64
	if err := db.Model(&models.Program{}).Count(&totalPrograms).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&models.Activity{}).Count(&totalActivities).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Store connection verified", fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"tests": fiber.Map{
			"programs": fiber.Map{
				"count":  totalPrograms,
				"sample": samplePrograms,
			},
			"activities": fiber.Map{
				"count": totalActivities,
			},
		},
	})
}
