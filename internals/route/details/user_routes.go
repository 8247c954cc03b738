// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "cukportal_backend/internals/features/users/profiles/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	profiles := &profileController.ProfileController{DB: db}

	user.Post("/profiles", profiles.CreateProfile)
	user.Get("/profiles/me", profiles.GetMyProfile)
	user.Patch("/profiles/:user_id", profiles.UpdateProfile)
}
