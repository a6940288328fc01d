package companyRoutes

import (
	companyController "skillcert/controllers/company"
	"skillcert/middleware"
	companyValidator "skillcert/validators/company"

	"github.com/gofiber/fiber/v2"
)

// SetupCompanyRoutes sets up admin company management routes
func SetupCompanyRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/company")

	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), companyValidator.CreateCompany(), companyController.CreateCompany)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), companyValidator.CompanyID(), companyController.UpdateCompany)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), companyValidator.List(), companyController.GetCompanies)
}
