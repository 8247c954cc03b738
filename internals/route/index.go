// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cukportal_backend/internals/constants"
	authMiddleware "cukportal_backend/internals/middlewares/auth"
	routeDetails "cukportal_backend/internals/route/details"
)

// SetupRoutes wires the four API groups:
//
//	/api/u — any authenticated user
//	/api/s — students
//	/api/t — teachers and admins
//	/api/a — admins
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", jwt)

	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/s", jwt,
		authMiddleware.OnlyRoles(
			constants.RoleErrorStudent("the student portal"),
			constants.StudentOnly...,
		),
	)

	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t", jwt,
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("the teacher portal"),
			constants.TeacherAndAbove...,
		),
	)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", jwt,
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("the admin portal"),
			constants.AdminOnly...,
		),
	)

	routeDetails.UserRoutes(user, db)
	routeDetails.AcademicRoutes(user, student, teacher, admin, db)
	routeDetails.CampusRoutes(user, student, teacher, admin, db)
}
