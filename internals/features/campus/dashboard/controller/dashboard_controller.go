// file: internals/features/campus/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cukportal_backend/internals/constants"
	assignmentModel "cukportal_backend/internals/features/academics/assignments/model"
	assignmentService "cukportal_backend/internals/features/academics/assignments/service"
	attendanceModel "cukportal_backend/internals/features/academics/attendance/model"
	attendanceService "cukportal_backend/internals/features/academics/attendance/service"
	markService "cukportal_backend/internals/features/academics/marks/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

// Thin read-only aggregation over the other features' query helpers. Each
// count tolerates an empty table; a store error on any leg fails the whole
// request rather than returning a partial dashboard.
type DashboardController struct {
	DB *gorm.DB
}

// GET /api/s/dashboard
func (h *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsStudent() {
		return fiber.NewError(fiber.StatusForbidden, "Student dashboard is for students")
	}

	assignments, err := assignmentService.AssignmentsForStudent(h.DB, actor.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	var subs []assignmentModel.SubmissionModel
	if err := h.DB.Where("student_id = ?", actor.UserID).Find(&subs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	now := time.Now()
	views := assignmentService.BuildStudentViews(assignments, subs, now)

	avg, err := markService.AverageTotal(h.DB, actor.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute average marks")
	}

	var attendanceRows []attendanceModel.AttendanceModel
	if err := h.DB.Where("student_id = ?", actor.UserID).Find(&attendanceRows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"pending_assignments": assignmentService.PendingCount(views),
		"average_marks":       avg,
		"attendance_rate":     attendanceService.Rate(attendanceRows),
		"upcoming_deadlines":  assignmentService.UpcomingDeadlines(views, now, 3),
	})
}

// GET /api/t/dashboard
func (h *DashboardController) TeacherDashboard(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Teacher dashboard is for teachers")
	}

	var subjects, pendingLeaves, assignments, notices int64

	if err := h.DB.Table("subjects").
		Where("teacher_id = ?", actor.UserID).
		Count(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}
	if err := h.DB.Table("leave_applications").
		Where("status = ?", constants.LeavePending).
		Count(&pendingLeaves).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count leave applications")
	}
	if err := h.DB.Table("assignments").
		Where("teacher_id = ?", actor.UserID).
		Count(&assignments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count assignments")
	}
	if err := h.DB.Table("notices").
		Where("created_by = ?", actor.UserID).
		Count(&notices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count notices")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"subjects_count":    subjects,
		"pending_leaves":    pendingLeaves,
		"assignments_count": assignments,
		"notices_authored":  notices,
	})
}
