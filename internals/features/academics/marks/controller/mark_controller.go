// file: internals/features/academics/marks/controller/mark_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
	markDTO "cukportal_backend/internals/features/academics/marks/dto"
	markModel "cukportal_backend/internals/features/academics/marks/model"
	markService "cukportal_backend/internals/features/academics/marks/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type MarkController struct {
	DB *gorm.DB
}

// UPSERT (partial component update, server-side total/grade recompute)
// POST /api/t/marks
func (h *MarkController) UpsertMarks(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may enter marks")
	}

	var req markDTO.UpsertMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if fe := req.FieldErrors(); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var saved markModel.MarkModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// read the stored row first so absent fields merge against current
		// values instead of zeroing them
		var stored markModel.MarkModel
		err := tx.Where("student_id = ? AND subject_id = ?", req.StudentID, req.SubjectID).
			First(&stored).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		saved = markService.Merge(stored, req)
		saved.UpdatedBy = &actor.UserID

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "subject_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"test1_marks", "test2_marks", "presentation_marks",
				"assignment_marks", "attendance_marks",
				"total_marks", "grade", "updated_by", "updated_at",
			}),
		}).Create(&saved).Error
	})
	if txErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save marks")
	}

	return helper.JsonUpdated(c, "Marks saved", saved)
}

// SHEET (reconciled roster with marks for one subject)
// GET /api/t/marks/sheet?subject_id=
func (h *MarkController) GetMarksSheet(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may view mark sheets")
	}

	subjectID, err := uuid.Parse(strings.TrimSpace(c.Query("subject_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	roster, err := rosterService.RosterForSubject(h.DB, subjectID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	var rows []markModel.MarkModel
	if err := h.DB.Where("subject_id = ?", subjectID).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch marks")
	}

	return helper.JsonOK(c, "", markService.ReconcileRoster(roster, rows))
}

// OWN MARKS + AVERAGE
// GET /api/s/marks
func (h *MarkController) GetMyMarks(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	var rows []markModel.MarkModel
	if err := h.DB.
		Where("student_id = ?", actor.UserID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch marks")
	}

	avg, err := markService.AverageTotal(h.DB, actor.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute average")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"records":       rows,
		"average_total": avg,
	})
}
