// file: internals/features/academics/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubjectID     uuid.UUID  `gorm:"column:subject_id;type:uuid;not null;index" json:"subject_id"`
	TeacherID     uuid.UUID  `gorm:"column:teacher_id;type:uuid;not null;index" json:"teacher_id"`
	Title         string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description   *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	DueDate       time.Time  `gorm:"column:due_date;not null;index" json:"due_date"`
	MaxMarks      int        `gorm:"column:max_marks;not null;default:20" json:"max_marks"`
	AttachmentURL *string    `gorm:"column:attachment_url;type:text" json:"attachment_url,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }

// One submission per (assignment, student). Resubmission overwrites the URL
// in place until the row is graded; graded_at doubles as the lock.
type SubmissionModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID  uuid.UUID  `gorm:"column:assignment_id;type:uuid;not null;uniqueIndex:uq_submissions_assignment_student" json:"assignment_id"`
	StudentID     uuid.UUID  `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;index" json:"student_id"`
	SubmissionURL string     `gorm:"column:submission_url;type:text;not null" json:"submission_url"`
	SubmittedAt   time.Time  `gorm:"column:submitted_at;not null" json:"submitted_at"`
	MarksObtained *int       `gorm:"column:marks_obtained" json:"marks_obtained,omitempty"`
	Feedback      *string    `gorm:"column:feedback;type:text" json:"feedback,omitempty"`
	GradedBy      *uuid.UUID `gorm:"column:graded_by;type:uuid" json:"graded_by,omitempty"`
	GradedAt      *time.Time `gorm:"column:graded_at" json:"graded_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (SubmissionModel) TableName() string { return "assignment_submissions" }

func (s SubmissionModel) IsGraded() bool { return s.GradedAt != nil }
