// file: internals/features/academics/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentDTO "cukportal_backend/internals/features/academics/assignments/dto"
	assignmentModel "cukportal_backend/internals/features/academics/assignments/model"
	assignmentService "cukportal_backend/internals/features/academics/assignments/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/t/assignments
func (h *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may create assignments")
	}

	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel(actor.UserID)
	if err := h.DB.Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Assignment created", mo)
}

// UPDATE (owner only)
// PATCH /api/t/assignments/:id
func (h *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo assignmentModel.AssignmentModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignment")
	}
	if mo.TeacherID != actor.UserID && !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not the owner of this assignment")
	}

	var req assignmentDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := req.Apply(&mo); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if err := h.DB.Save(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonUpdated(c, "Assignment updated", mo)
}

// DELETE (owner only; submissions cascade at the DB level)
// DELETE /api/t/assignments/:id
func (h *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo assignmentModel.AssignmentModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignment")
	}
	if mo.TeacherID != actor.UserID && !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not the owner of this assignment")
	}

	if err := h.DB.Delete(&assignmentModel.AssignmentModel{}, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"id": id})
}

// LIST OWN (teacher)
// GET /api/t/assignments
func (h *AssignmentController) ListMyAssignments(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	tx := h.DB.Where("teacher_id = ?", actor.UserID)
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		subjectID, err := uuid.Parse(sid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
		}
		tx = tx.Where("subject_id = ?", subjectID)
	}

	var rows []assignmentModel.AssignmentModel
	if err := tx.Order("due_date DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	return helper.JsonOK(c, "", rows)
}

// LIST FOR STUDENT (assignments of enrolled subjects, with status)
// GET /api/s/assignments
func (h *AssignmentController) ListStudentAssignments(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	assignments, err := assignmentService.AssignmentsForStudent(h.DB, actor.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	var subs []assignmentModel.SubmissionModel
	if err := h.DB.Where("student_id = ?", actor.UserID).Find(&subs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	views := assignmentService.BuildStudentViews(assignments, subs, time.Now())
	return helper.JsonOK(c, "", fiber.Map{
		"assignments":   views,
		"pending_count": assignmentService.PendingCount(views),
	})
}

// SUBMIT (resubmission overwrites until graded; late is accepted)
// POST /api/s/assignments/:id/submit
func (h *AssignmentController) SubmitAssignment(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsStudent() {
		return fiber.NewError(fiber.StatusForbidden, "Only students may submit assignments")
	}

	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req assignmentDTO.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.SubmissionURL = strings.TrimSpace(req.SubmissionURL)
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	var saved assignmentModel.SubmissionModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing assignmentModel.SubmissionModel
		err := tx.Where("assignment_id = ? AND student_id = ?", assignmentID, actor.UserID).
			First(&existing).Error
		if err == nil && existing.IsGraded() {
			return fiber.NewError(fiber.StatusConflict, "Submission is already graded")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		saved = assignmentModel.SubmissionModel{
			AssignmentID:  assignmentID,
			StudentID:     actor.UserID,
			SubmissionURL: req.SubmissionURL,
			SubmittedAt:   time.Now(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"submission_url", "submitted_at"}),
		}).Create(&saved).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save submission")
	}

	return helper.JsonCreated(c, "Assignment submitted", saved)
}

// LIST SUBMISSIONS (owner teacher)
// GET /api/t/assignments/:id/submissions
func (h *AssignmentController) ListSubmissions(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignment")
	}
	if assignment.TeacherID != actor.UserID && !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not the owner of this assignment")
	}

	var subs []assignmentModel.SubmissionModel
	if err := h.DB.
		Where("assignment_id = ?", assignmentID).
		Order("submitted_at ASC").
		Find(&subs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonOK(c, "", subs)
}

// GRADE (owner teacher; marks capped by the assignment's max_marks)
// PATCH /api/t/submissions/:id/grade
func (h *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may grade submissions")
	}

	submissionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid submission id")
	}

	var req assignmentDTO.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var sub assignmentModel.SubmissionModel
	if err := h.DB.First(&sub, "id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch submission")
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, "id = ?", sub.AssignmentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignment")
	}
	if assignment.TeacherID != actor.UserID && !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not the owner of this assignment")
	}
	if req.MarksObtained > assignment.MaxMarks {
		return helper.JsonValidationError(c, map[string][]string{
			"marks_obtained": {"must not exceed the assignment's max marks"},
		})
	}

	now := time.Now()
	sub.MarksObtained = &req.MarksObtained
	sub.Feedback = req.Feedback
	sub.GradedBy = &actor.UserID
	sub.GradedAt = &now

	// grading never touches submission_url or submitted_at
	if err := h.DB.Model(&assignmentModel.SubmissionModel{}).
		Where("id = ?", submissionID).
		Updates(map[string]any{
			"marks_obtained": sub.MarksObtained,
			"feedback":       sub.Feedback,
			"graded_by":      sub.GradedBy,
			"graded_at":      sub.GradedAt,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to grade submission")
	}

	return helper.JsonUpdated(c, "Submission graded", sub)
}
