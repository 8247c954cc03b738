// file: internals/features/users/profiles/controller/profile_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	profileDTO "cukportal_backend/internals/features/users/profiles/dto"
	profileModel "cukportal_backend/internals/features/users/profiles/model"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type ProfileController struct {
	DB *gorm.DB
}

// CREATE (sign-up hook; idempotent on user_id)
// POST /api/u/profiles
func (h *ProfileController) CreateProfile(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req profileDTO.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	// a user can only create their own profile; admins may seed others
	if !actor.IsAdmin() {
		req.UserID = actor.UserID
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel()
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create profile")
	}

	// re-read so the caller always gets the stored row (OnConflict DoNothing
	// leaves mo zero-valued when the row already existed)
	if err := h.DB.First(&mo, "user_id = ?", req.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.JsonCreated(c, "Profile ready", profileDTO.FromProfileModel(mo))
}

// GET SELF
// GET /api/u/profiles/me
func (h *ProfileController) GetMyProfile(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	var mo profileModel.ProfileModel
	if err := h.DB.First(&mo, "user_id = ?", actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.JsonOK(c, "Profile found", profileDTO.FromProfileModel(mo))
}

// UPDATE (partial; self or admin)
// PATCH /api/u/profiles/:user_id
func (h *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	if userID != actor.UserID && !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "You may only edit your own profile")
	}

	var req profileDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	var mo profileModel.ProfileModel
	if err := h.DB.First(&mo, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	req.Apply(&mo)
	if err := h.DB.Save(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated", profileDTO.FromProfileModel(mo))
}
