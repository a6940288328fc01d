package orderRoutes

import (
	orderController "skillcert/controllers/order"
	"skillcert/middleware"
	orderValidator "skillcert/validators/order"

	"github.com/gofiber/fiber/v2"
)

// SetupOrderRoutes sets up level purchase and payment approval routes
func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/order")

	orderGroup.Post("/create", middleware.JWTMiddleware, orderValidator.CreateOrder(), orderController.CreateOrder)
	orderGroup.Get("/list", middleware.JWTMiddleware, orderController.GetMyOrders)

	adminGroup := app.Group("/admin/order", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	adminGroup.Get("/pending", orderController.AdminGetPendingOrders)
	adminGroup.Post("/:id/approve", orderValidator.OrderID(), orderController.AdminApproveOrder)
	adminGroup.Post("/:id/reject", orderValidator.OrderID(), orderController.AdminRejectOrder)
}
