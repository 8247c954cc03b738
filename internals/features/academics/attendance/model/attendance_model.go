// file: internals/features/academics/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (student, subject, date); the triple is the upsert conflict
// target. marked_by records the teacher who saved the row, never a student.
type AttendanceModel struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID  `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_subject_date" json:"student_id"`
	SubjectID uuid.UUID  `gorm:"column:subject_id;type:uuid;not null;uniqueIndex:uq_attendance_student_subject_date;index" json:"subject_id"`
	Date      time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_student_subject_date" json:"date"`
	Status    string     `gorm:"column:status;type:varchar(20);not null;default:present" json:"status"`
	MarkedBy  *uuid.UUID `gorm:"column:marked_by;type:uuid" json:"marked_by,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
