// file: internals/features/academics/marks/model/mark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (student, subject). The five component columns are nullable so
// "not yet entered" stays distinct from an explicit 0; total_marks and grade
// are derived server side and never accepted from callers.
type MarkModel struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID         uuid.UUID  `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_marks_student_subject" json:"student_id"`
	SubjectID         uuid.UUID  `gorm:"column:subject_id;type:uuid;not null;uniqueIndex:uq_marks_student_subject;index" json:"subject_id"`
	Test1Marks        *int       `gorm:"column:test1_marks" json:"test1_marks"`
	Test2Marks        *int       `gorm:"column:test2_marks" json:"test2_marks"`
	PresentationMarks *int       `gorm:"column:presentation_marks" json:"presentation_marks"`
	AssignmentMarks   *int       `gorm:"column:assignment_marks" json:"assignment_marks"`
	AttendanceMarks   *int       `gorm:"column:attendance_marks" json:"attendance_marks"`
	TotalMarks        int        `gorm:"column:total_marks;not null;default:0" json:"total_marks"`
	Grade             string     `gorm:"column:grade;type:varchar(2);not null;default:F" json:"grade"`
	UpdatedBy         *uuid.UUID `gorm:"column:updated_by;type:uuid" json:"updated_by,omitempty"`
	CreatedAt         time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (MarkModel) TableName() string { return "marks" }
