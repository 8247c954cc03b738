// file: internals/features/academics/marks/dto/mark_dto.go
package dto

import (
	"fmt"

	"github.com/google/uuid"

	helper "cukportal_backend/internals/helpers"
)

// UpsertMarksRequest carries a partial component update: an absent field keeps
// the stored value, an explicit null clears it, a number replaces it. The
// tri-state fields fall outside struct-tag validation, so ranges are checked
// in FieldErrors.
type UpsertMarksRequest struct {
	StudentID    uuid.UUID              `json:"student_id" validate:"required"`
	SubjectID    uuid.UUID              `json:"subject_id" validate:"required"`
	Test1        helper.PatchField[int] `json:"test1_marks"`
	Test2        helper.PatchField[int] `json:"test2_marks"`
	Presentation helper.PatchField[int] `json:"presentation_marks"`
	Assignment   helper.PatchField[int] `json:"assignment_marks"`
	Attendance   helper.PatchField[int] `json:"attendance_marks"`
}

// Component caps: tests, presentation and assignment are out of 20, the
// attendance component is out of 5.
func (r UpsertMarksRequest) FieldErrors() map[string][]string {
	fe := map[string][]string{}
	check := func(name string, f helper.PatchField[int], max int) {
		v, ok := f.Get()
		if !ok || v == nil {
			return
		}
		if *v < 0 || *v > max {
			fe[name] = append(fe[name], fmt.Sprintf("must be between 0 and %d", max))
		}
	}
	check("test1_marks", r.Test1, 20)
	check("test2_marks", r.Test2, 20)
	check("presentation_marks", r.Presentation, 20)
	check("assignment_marks", r.Assignment, 20)
	check("attendance_marks", r.Attendance, 5)
	if len(fe) == 0 {
		return nil
	}
	return fe
}
