package activityRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "arc/controllers/activity"
	validators "arc/validators/activity"
)

// SetupActivityRoutes sets up all activity management routes
func SetupActivityRoutes(app *fiber.App) {
	activityGroup := app.Group("/activities")

	activityGroup.Get("/", controllers.ListActivities)
	activityGroup.Post("/", validators.CreateActivity(), controllers.CreateActivity)
	activityGroup.Post("/generate", validators.GenerateActivity(), controllers.GenerateActivity)
	activityGroup.Get("/:id", controllers.GetActivity)
}
