package usageController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"arc/database"
	"arc/middleware"
	"arc/models"
)

// firstOfCurrentMonth returns the first day of the current month in UTC
func firstOfCurrentMonth() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func withProgram(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "handle")
}

// CurrentMonthUsage returns this month's usage rows for all programs
func CurrentMonthUsage(c *fiber.Ctx) error {
	var usage []models.ProgramUsage
	if err := database.Database.Db.
		Preload("Program", withProgram).
		Where("month >= ?", firstOfCurrentMonth()).
		Find(&usage).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", usage)
}

// UsageByProgram returns up to the last 12 monthly rows for one program
func UsageByProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Program not found")
	}

	var usage []models.ProgramUsage
	if err := database.Database.Db.
		Where("program_id = ?", programID).
		Order("month desc").
		Limit(12).
		Find(&usage).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", usage)
}

// DashboardStats returns totals plus current-month aggregates
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalPrograms, totalActivities int64
	if err := db.Model(&models.Program{}).Count(&totalPrograms).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&models.Activity{}).Count(&totalActivities).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var agg struct {
		Views         int
		Completions   int
		PointsAwarded int
	}
	if err := db.Model(&models.ProgramUsage{}).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(completions), 0) AS completions, COALESCE(SUM(points_awarded), 0) AS points_awarded").
		Where("month >= ?", firstOfCurrentMonth()).
		Scan(&agg).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", fiber.Map{
		"total_programs":   totalPrograms,
		"total_activities": totalActivities,
		"current_month": fiber.Map{
			"views":          agg.Views,
			"completions":    agg.Completions,
			"points_awarded": agg.PointsAwarded,
		},
	})
}
