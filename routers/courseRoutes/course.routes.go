package courseRoutes

import (
	controllers "skillcert/controllers/course"
	"skillcert/middleware"
	validators "skillcert/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all worker-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details (published courses)
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment content tree and progress submission
	enrollGroup := app.Group("/enrollment")
	enrollGroup.Get("/:enrollment_id/tree", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.GetContentTree)
	enrollGroup.Post("/:enrollment_id/content/:content_id/submit", middleware.JWTMiddleware,
		validators.EnrollmentID(), validators.ContentID(), validators.SubmitProgress(), controllers.SubmitProgress)
	enrollGroup.Get("/:enrollment_id/certificate", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.GetEnrollmentCertificate)

	// Worker enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
