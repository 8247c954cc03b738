// file: internals/features/academics/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentDTO "cukportal_backend/internals/features/academics/enrollments/dto"
	enrollmentModel "cukportal_backend/internals/features/academics/enrollments/model"
	enrollmentService "cukportal_backend/internals/features/academics/enrollments/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB *gorm.DB
}

// CREATE CLASS
// POST /api/a/classes
func (h *EnrollmentController) CreateClass(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	var req enrollmentDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel()
	if err := h.DB.Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", mo)
}

// LIST CLASSES
// GET /api/u/classes
func (h *EnrollmentController) ListClasses(c *fiber.Ctx) error {
	var rows []enrollmentModel.ClassModel
	if err := h.DB.Order("department ASC, semester ASC, name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	return helper.JsonOK(c, "", rows)
}

// ENROLL
// POST /api/a/enrollments
func (h *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	var req enrollmentDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := enrollmentModel.NewEnrollment(req.StudentID, req.SubjectID, req.ClassID)
	if err := h.DB.Create(&mo).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Student is already enrolled in this subject")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
	}

	return helper.JsonCreated(c, "Enrollment created", enrollmentDTO.FromEnrollmentModel(mo))
}

// LIST OWN ENROLLMENTS
// GET /api/s/enrollments
func (h *EnrollmentController) ListMyEnrollments(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := h.DB.
		Where("student_id = ?", actor.UserID).
		Order("enrolled_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.JsonOK(c, "", enrollmentDTO.FromEnrollmentModels(rows))
}

// ROSTER
// GET /api/t/subjects/:subject_id/roster
func (h *EnrollmentController) GetRoster(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("subject_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	roster, err := enrollmentService.RosterForSubject(h.DB, subjectID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch roster")
	}
	return helper.JsonOK(c, "", roster)
}

// WITHDRAW (status change, not delete)
// PATCH /api/a/enrollments/:id/withdraw
func (h *EnrollmentController) WithdrawEnrollment(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo enrollmentModel.EnrollmentModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	mo.Status = "withdrawn"
	if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("id = ?", id).
		Update("status", mo.Status).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return helper.JsonUpdated(c, "Enrollment withdrawn", enrollmentDTO.FromEnrollmentModel(mo))
}
