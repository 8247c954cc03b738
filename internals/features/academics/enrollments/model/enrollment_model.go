// file: internals/features/academics/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"cukportal_backend/internals/constants"
)

type ClassModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Department string    `gorm:"column:department;type:varchar(120);not null" json:"department"`
	Semester   int       `gorm:"column:semester;not null" json:"semester"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (ClassModel) TableName() string { return "classes" }

// One enrollment per (student, subject); the class may vary across cohorts
// but the pair stays unique.
type EnrollmentModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_enrollments_student_subject" json:"student_id"`
	SubjectID  uuid.UUID `gorm:"column:subject_id;type:uuid;not null;uniqueIndex:uq_enrollments_student_subject;index" json:"subject_id"`
	ClassID    uuid.UUID `gorm:"column:class_id;type:uuid;not null" json:"class_id"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:enrolled" json:"status"`
	EnrolledAt time.Time `gorm:"column:enrolled_at;not null;autoCreateTime" json:"enrolled_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func NewEnrollment(studentID, subjectID, classID uuid.UUID) EnrollmentModel {
	return EnrollmentModel{
		StudentID: studentID,
		SubjectID: subjectID,
		ClassID:   classID,
		Status:    constants.EnrollmentEnrolled,
	}
}
