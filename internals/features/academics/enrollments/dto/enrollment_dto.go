// file: internals/features/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "cukportal_backend/internals/features/academics/enrollments/model"
)

type CreateClassRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=120"`
	Department string `json:"department" validate:"required,min=1,max=120"`
	Semester   int    `json:"semester" validate:"required,min=1,max=12"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Department = strings.TrimSpace(r.Department)
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{
		Name:       r.Name,
		Department: r.Department,
		Semester:   r.Semester,
	}
}

type CreateEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
}

type EnrollmentResponse struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	SubjectID  uuid.UUID `json:"subject_id"`
	ClassID    uuid.UUID `json:"class_id"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

func FromEnrollmentModel(mo m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         mo.ID,
		StudentID:  mo.StudentID,
		SubjectID:  mo.SubjectID,
		ClassID:    mo.ClassID,
		Status:     mo.Status,
		EnrolledAt: mo.EnrolledAt,
	}
}

func FromEnrollmentModels(rows []m.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromEnrollmentModel(rows[i]))
	}
	return out
}
