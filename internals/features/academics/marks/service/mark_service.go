// file: internals/features/academics/marks/service/mark_service.go
package service

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
	"cukportal_backend/internals/features/academics/grading"
	markDTO "cukportal_backend/internals/features/academics/marks/dto"
	markModel "cukportal_backend/internals/features/academics/marks/model"
)

// Merge applies a partial component request onto the stored row and recomputes
// the derived pair. Absent fields keep the stored component, null clears it;
// total and grade always come out of ComputeGrade, never out of the request.
func Merge(stored markModel.MarkModel, req markDTO.UpsertMarksRequest) markModel.MarkModel {
	out := stored
	out.StudentID = req.StudentID
	out.SubjectID = req.SubjectID

	apply := func(dst **int, f interface{ Get() (*int, bool) }) {
		if v, ok := f.Get(); ok {
			*dst = v
		}
	}
	apply(&out.Test1Marks, req.Test1)
	apply(&out.Test2Marks, req.Test2)
	apply(&out.PresentationMarks, req.Presentation)
	apply(&out.AssignmentMarks, req.Assignment)
	apply(&out.AttendanceMarks, req.Attendance)

	res := grading.ComputeGrade(grading.Components{
		Test1:        out.Test1Marks,
		Test2:        out.Test2Marks,
		Presentation: out.PresentationMarks,
		Assignment:   out.AssignmentMarks,
		Attendance:   out.AttendanceMarks,
	})
	out.TotalMarks = res.Total
	out.Grade = res.Grade
	return out
}

// MarksViewRow pairs a roster entry with the stored marks row, if any.
type MarksViewRow struct {
	StudentID        uuid.UUID            `json:"student_id"`
	FullName         string               `json:"full_name"`
	EnrollmentNumber *string              `json:"enrollment_number,omitempty"`
	Marks            *markModel.MarkModel `json:"marks"`
}

// ReconcileRoster produces one view row per enrolled student. Students without
// a marks row get a nil Marks so the sheet still lists them; marks rows for
// students no longer on the roster are dropped.
func ReconcileRoster(roster []rosterService.RosterEntry, rows []markModel.MarkModel) []MarksViewRow {
	byStudent := make(map[uuid.UUID]*markModel.MarkModel, len(rows))
	for i := range rows {
		byStudent[rows[i].StudentID] = &rows[i]
	}

	out := make([]MarksViewRow, 0, len(roster))
	for _, e := range roster {
		out = append(out, MarksViewRow{
			StudentID:        e.StudentID,
			FullName:         e.FullName,
			EnrollmentNumber: e.EnrollmentNumber,
			Marks:            byStudent[e.StudentID],
		})
	}
	return out
}

// AverageTotal is the mean of a student's total_marks across subjects, rounded
// to the nearest integer. No rows means 0.
func AverageTotal(db *gorm.DB, studentID uuid.UUID) (int, error) {
	var totals []int
	if err := db.Table("marks").
		Where("student_id = ?", studentID).
		Pluck("total_marks", &totals).Error; err != nil {
		return 0, err
	}
	if len(totals) == 0 {
		return 0, nil
	}
	sum := 0
	for _, t := range totals {
		sum += t
	}
	return int(math.Round(float64(sum) / float64(len(totals)))), nil
}
