// file: internals/features/academics/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "cukportal_backend/internals/features/academics/assignments/model"
	helper "cukportal_backend/internals/helpers"
)

type CreateAssignmentRequest struct {
	SubjectID     uuid.UUID `json:"subject_id" validate:"required"`
	Title         string    `json:"title" validate:"required,min=3,max=200"`
	Description   *string   `json:"description" validate:"omitempty,max=5000"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	MaxMarks      int       `json:"max_marks" validate:"required,min=1,max=100"`
	AttachmentURL *string   `json:"attachment_url" validate:"omitempty,url"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r CreateAssignmentRequest) ToModel(teacherID uuid.UUID) m.AssignmentModel {
	return m.AssignmentModel{
		SubjectID:     r.SubjectID,
		TeacherID:     teacherID,
		Title:         r.Title,
		Description:   r.Description,
		DueDate:       r.DueDate,
		MaxMarks:      r.MaxMarks,
		AttachmentURL: r.AttachmentURL,
	}
}

type UpdateAssignmentRequest struct {
	Title         helper.PatchField[string]    `json:"title"`
	Description   helper.PatchField[string]    `json:"description"`
	DueDate       helper.PatchField[time.Time] `json:"due_date"`
	MaxMarks      helper.PatchField[int]       `json:"max_marks"`
	AttachmentURL helper.PatchField[string]    `json:"attachment_url"`
}

// Apply folds present fields into the model. Title and DueDate are not
// clearable; a null for either is ignored rather than rejected.
func (r UpdateAssignmentRequest) Apply(mo *m.AssignmentModel) map[string][]string {
	fe := map[string][]string{}

	if v, ok := r.Title.Get(); ok && v != nil {
		t := strings.TrimSpace(*v)
		if len(t) < 3 || len(t) > 200 {
			fe["title"] = append(fe["title"], "must be between 3 and 200 characters")
		} else {
			mo.Title = t
		}
	}
	if v, ok := r.Description.Get(); ok {
		mo.Description = v
	}
	if v, ok := r.DueDate.Get(); ok && v != nil {
		mo.DueDate = *v
	}
	if v, ok := r.MaxMarks.Get(); ok && v != nil {
		if *v < 1 || *v > 100 {
			fe["max_marks"] = append(fe["max_marks"], "must be between 1 and 100")
		} else {
			mo.MaxMarks = *v
		}
	}
	if v, ok := r.AttachmentURL.Get(); ok {
		mo.AttachmentURL = v
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

type SubmitAssignmentRequest struct {
	SubmissionURL string `json:"submission_url" validate:"required,url"`
}

type GradeSubmissionRequest struct {
	MarksObtained int     `json:"marks_obtained" validate:"min=0"`
	Feedback      *string `json:"feedback" validate:"omitempty,max=5000"`
}
