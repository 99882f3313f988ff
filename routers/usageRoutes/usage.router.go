package usageRoutes

import (
	"github.com/gofiber/fiber/v2"

	diagnosticsControllers "arc/controllers/diagnostics"
	controllers "arc/controllers/usage"
)

// SetupUsageRoutes sets up usage reporting and diagnostics routes
func SetupUsageRoutes(app *fiber.App) {
	usageGroup := app.Group("/usage")
	usageGroup.Get("/current-month", controllers.CurrentMonthUsage)

	dashGroup := app.Group("/dashboard")
	dashGroup.Get("/stats", controllers.DashboardStats)

	app.Get("/test-connection", diagnosticsControllers.TestConnection)
}
