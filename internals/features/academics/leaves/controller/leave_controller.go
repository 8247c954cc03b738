// file: internals/features/academics/leaves/controller/leave_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	leaveDTO "cukportal_backend/internals/features/academics/leaves/dto"
	leaveModel "cukportal_backend/internals/features/academics/leaves/model"
	leaveService "cukportal_backend/internals/features/academics/leaves/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type LeaveController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/s/leaves
func (h *LeaveController) CreateLeave(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsStudent() {
		return fiber.NewError(fiber.StatusForbidden, "Only students may apply for leave")
	}

	var req leaveDTO.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if fe := req.DateRangeError(); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel(actor.UserID)
	if err := h.DB.Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create leave application")
	}
	return helper.JsonCreated(c, "Leave application submitted", mo)
}

// LIST OWN
// GET /api/s/leaves
func (h *LeaveController) ListMyLeaves(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	tx := h.DB.Where("student_id = ?", actor.UserID)
	tx = applyLeaveFilters(tx, c)

	var rows []leaveModel.LeaveApplicationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch leave applications")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"records": rows,
		"stats":   leaveService.ComputeStats(rows),
	})
}

// LIST FOR REVIEW
// GET /api/t/leaves
func (h *LeaveController) ListLeavesForReview(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may review leave applications")
	}

	tx := applyLeaveFilters(h.DB, c)

	var rows []leaveModel.LeaveApplicationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch leave applications")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"records": rows,
		"stats":   leaveService.ComputeStats(rows),
	})
}

// REVIEW (pending-only state transition)
// PATCH /api/t/leaves/:id/review
func (h *LeaveController) ReviewLeave(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may review leave applications")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req leaveDTO.ReviewLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	// row lock so two concurrent reviews cannot both see "pending"
	var mo leaveModel.LeaveApplicationModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&mo, "id = ?", id).Error; err != nil {
			return err
		}

		next, err := leaveService.Transition(mo.Status, req.Decision)
		if err != nil {
			var te *leaveService.TransitionError
			if errors.As(err, &te) {
				return fiber.NewError(fiber.StatusConflict, "Leave application has already been reviewed")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		leaveService.ApplyReview(&mo, next, actor.UserID, req.RejectionReason, time.Now())

		return tx.Model(&leaveModel.LeaveApplicationModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":           mo.Status,
				"reviewed_by":      mo.ReviewedBy,
				"reviewed_at":      mo.ReviewedAt,
				"rejection_reason": mo.RejectionReason,
			}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Leave application not found")
		}
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to review leave application")
	}

	return helper.JsonUpdated(c, "Leave application reviewed", mo)
}

func applyLeaveFilters(tx *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if lt := strings.TrimSpace(c.Query("leave_type")); lt != "" {
		tx = tx.Where("leave_type = ?", lt)
	}
	return tx
}
