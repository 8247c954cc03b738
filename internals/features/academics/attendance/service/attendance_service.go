// file: internals/features/academics/attendance/service/attendance_service.go
package service

import (
	"math"

	"github.com/google/uuid"

	"cukportal_backend/internals/constants"
	attendanceModel "cukportal_backend/internals/features/academics/attendance/model"
	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
)

// ViewRow pairs a roster entry with the attendance status for one date.
// Recorded=false means no row exists yet: the "present" status is a display
// default only and is never persisted until the teacher saves explicitly.
type ViewRow struct {
	StudentID        uuid.UUID `json:"student_id"`
	FullName         string    `json:"full_name"`
	EnrollmentNumber *string   `json:"enrollment_number,omitempty"`
	Status           string    `json:"status"`
	Recorded         bool      `json:"recorded"`
}

// Reconcile merges the enrollment roster with the attendance rows of one
// (subject, date). Exactly one view row per roster entry; attendance rows for
// students no longer on the roster are dropped.
func Reconcile(roster []rosterService.RosterEntry, rows []attendanceModel.AttendanceModel) []ViewRow {
	byStudent := make(map[uuid.UUID]attendanceModel.AttendanceModel, len(rows))
	for _, r := range rows {
		byStudent[r.StudentID] = r
	}

	out := make([]ViewRow, 0, len(roster))
	for _, e := range roster {
		vr := ViewRow{
			StudentID:        e.StudentID,
			FullName:         e.FullName,
			EnrollmentNumber: e.EnrollmentNumber,
			Status:           constants.AttendancePresent,
		}
		if row, ok := byStudent[e.StudentID]; ok {
			vr.Status = row.Status
			vr.Recorded = true
		}
		out = append(out, vr)
	}
	return out
}

// Rate is the student's attendance percentage: present and late count as
// attended, rounded to the nearest integer. Zero rows is 0, not NaN.
func Rate(rows []attendanceModel.AttendanceModel) int {
	if len(rows) == 0 {
		return 0
	}
	attended := 0
	for _, r := range rows {
		if r.Status == constants.AttendancePresent || r.Status == constants.AttendanceLate {
			attended++
		}
	}
	return int(math.Round(float64(attended) / float64(len(rows)) * 100))
}
