package programRoutes

import (
	"github.com/gofiber/fiber/v2"

	activityControllers "arc/controllers/activity"
	controllers "arc/controllers/program"
	usageControllers "arc/controllers/usage"
	validators "arc/validators/program"
)

// SetupProgramRoutes sets up all program management routes
func SetupProgramRoutes(app *fiber.App) {
	programGroup := app.Group("/programs")

	programGroup.Get("/", controllers.ListPrograms)
	programGroup.Post("/", validators.CreateProgram(), controllers.CreateProgram)
	programGroup.Get("/:id", controllers.GetProgram)
	programGroup.Get("/:id/activities", activityControllers.ListProgramActivities)
	programGroup.Get("/:id/usage", usageControllers.UsageByProgram)
	programGroup.Get("/:id/perk-status", controllers.PerkStatus)
}
