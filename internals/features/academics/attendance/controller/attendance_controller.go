// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceDTO "cukportal_backend/internals/features/academics/attendance/dto"
	attendanceModel "cukportal_backend/internals/features/academics/attendance/model"
	attendanceService "cukportal_backend/internals/features/academics/attendance/service"
	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

// UPSERT (insert-or-overwrite on the (student, subject, date) natural key)
// POST /api/t/attendance
func (h *AttendanceController) UpsertAttendance(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may mark attendance")
	}

	var req attendanceDTO.UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel(actor.UserID)
	// last-writer-wins on the natural key; saves for different students are
	// independent rows and never block each other
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "subject_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by"}),
		}).
		Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.JsonUpdated(c, "Attendance saved", attendanceDTO.FromAttendanceModel(mo))
}

// SHEET (reconciled roster for one subject+date)
// GET /api/t/attendance/sheet?subject_id=&date=
func (h *AttendanceController) GetAttendanceSheet(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may view attendance sheets")
	}

	subjectID, err := uuid.Parse(strings.TrimSpace(c.Query("subject_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}
	date, err := time.Parse(attendanceDTO.DateLayout, strings.TrimSpace(c.Query("date")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date (expected YYYY-MM-DD)")
	}

	roster, err := rosterService.RosterForSubject(h.DB, subjectID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	var rows []attendanceModel.AttendanceModel
	if err := h.DB.
		Where("subject_id = ? AND date = ?", subjectID, date).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "", attendanceService.Reconcile(roster, rows))
}

// OWN HISTORY + RATE
// GET /api/s/attendance
func (h *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	tx := h.DB.Where("student_id = ?", actor.UserID)
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		subjectID, err := uuid.Parse(sid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
		}
		tx = tx.Where("subject_id = ?", subjectID)
	}

	var rows []attendanceModel.AttendanceModel
	if err := tx.Order("date DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"records": attendanceDTO.FromAttendanceModels(rows),
		"rate":    attendanceService.Rate(rows),
	})
}
