package courseRoutes

import (
	controllers "skillcert/controllers/course"
	"skillcert/middleware"
	validators "skillcert/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course authoring routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), controllers.AdminUpdateCourse)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Get("/list", validators.CourseList(), controllers.AdminGetAllCourses)

	// Level management
	adminGroup.Post("/:id/level", validators.CourseID(), validators.CreateLevel(), controllers.AdminCreateLevel)
	adminGroup.Get("/:id/levels", validators.CourseID(), controllers.AdminListLevels)

	// Content sequence management
	levelGroup := app.Group("/admin/level", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	levelGroup.Post("/:level_id/publish", validators.LevelID(), controllers.AdminPublishLevel)
	levelGroup.Post("/:level_id/content", validators.LevelID(), validators.CreateContent(), controllers.AdminCreateContent)
	levelGroup.Get("/:level_id/content", validators.LevelID(), controllers.AdminListContent)

	contentGroup := app.Group("/admin/content", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	contentGroup.Put("/:content_id", validators.ContentID(), controllers.AdminUpdateContent)
	contentGroup.Post("/:content_id/publish", validators.ContentID(), controllers.AdminPublishContent)
	contentGroup.Post("/:content_id/question", validators.ContentID(), validators.AddQuestion(), controllers.AdminAddQuestion)
	contentGroup.Get("/:content_id/questions", validators.ContentID(), controllers.AdminListQuestions)
}
