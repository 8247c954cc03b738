// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "cukportal_backend/internals/features/academics/attendance/model"
)

// DateLayout is the wire format for attendance dates (date-only column).
const DateLayout = "2006-01-02"

type UpsertAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=present absent late on_leave"`
}

// ToModel resolves the wire date; validate runs before this so the parse
// cannot fail here.
func (r UpsertAttendanceRequest) ToModel(markedBy uuid.UUID) m.AttendanceModel {
	d, _ := time.Parse(DateLayout, r.Date)
	return m.AttendanceModel{
		StudentID: r.StudentID,
		SubjectID: r.SubjectID,
		Date:      d,
		Status:    r.Status,
		MarkedBy:  &markedBy,
	}
}

type AttendanceResponse struct {
	ID        uuid.UUID  `json:"id"`
	StudentID uuid.UUID  `json:"student_id"`
	SubjectID uuid.UUID  `json:"subject_id"`
	Date      string     `json:"date"`
	Status    string     `json:"status"`
	MarkedBy  *uuid.UUID `json:"marked_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromAttendanceModel(mo m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        mo.ID,
		StudentID: mo.StudentID,
		SubjectID: mo.SubjectID,
		Date:      mo.Date.Format(DateLayout),
		Status:    mo.Status,
		MarkedBy:  mo.MarkedBy,
		CreatedAt: mo.CreatedAt,
	}
}

func FromAttendanceModels(rows []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromAttendanceModel(rows[i]))
	}
	return out
}
