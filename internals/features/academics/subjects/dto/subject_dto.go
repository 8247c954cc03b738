// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "cukportal_backend/internals/features/academics/subjects/model"
	helper "cukportal_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	Code       string     `json:"code" validate:"required,min=1,max=40"`
	Name       string     `json:"name" validate:"required,min=1,max=120"`
	Credits    int        `json:"credits" validate:"required,min=1,max=10"`
	Department string     `json:"department" validate:"required,min=1,max=120"`
	Semester   int        `json:"semester" validate:"required,min=1,max=12"`
	TeacherID  *uuid.UUID `json:"teacher_id"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	r.Department = strings.TrimSpace(r.Department)
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		Code:       r.Code,
		Name:       r.Name,
		Credits:    r.Credits,
		Department: r.Department,
		Semester:   r.Semester,
		TeacherID:  r.TeacherID,
	}
}

/* =========================================================
   UPDATE (PATCH) — tri-state
   ========================================================= */

type UpdateSubjectRequest struct {
	Code       helper.PatchField[string]    `json:"code"`
	Name       helper.PatchField[string]    `json:"name"`
	Credits    helper.PatchField[int]       `json:"credits"`
	Department helper.PatchField[string]    `json:"department"`
	Semester   helper.PatchField[int]       `json:"semester"`
	TeacherID  helper.PatchField[uuid.UUID] `json:"teacher_id"`
}

func (p UpdateSubjectRequest) Apply(mo *m.SubjectModel) {
	if p.Code.Present && p.Code.Value != nil {
		mo.Code = strings.ToUpper(strings.TrimSpace(*p.Code.Value))
	}
	if p.Name.Present && p.Name.Value != nil {
		mo.Name = strings.TrimSpace(*p.Name.Value)
	}
	if p.Credits.Present && p.Credits.Value != nil {
		mo.Credits = *p.Credits.Value
	}
	if p.Department.Present && p.Department.Value != nil {
		mo.Department = strings.TrimSpace(*p.Department.Value)
	}
	if p.Semester.Present && p.Semester.Value != nil {
		mo.Semester = *p.Semester.Value
	}
	if p.TeacherID.Present {
		mo.TeacherID = p.TeacherID.Value
	}
}

/* =========================================================
   QUERIES & RESPONSES
   ========================================================= */

type ListSubjectQuery struct {
	Q          *string    `query:"q"`
	Department *string    `query:"department"`
	Semester   *int       `query:"semester"`
	TeacherID  *uuid.UUID `query:"teacher_id"`
	OrderBy    *string    `query:"order_by"` // code|name|created_at
	Sort       *string    `query:"sort"`     // asc|desc
}

type SubjectResponse struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Credits    int        `json:"credits"`
	Department string     `json:"department"`
	Semester   int        `json:"semester"`
	TeacherID  *uuid.UUID `json:"teacher_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromSubjectModel(mo m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:         mo.ID,
		Code:       mo.Code,
		Name:       mo.Name,
		Credits:    mo.Credits,
		Department: mo.Department,
		Semester:   mo.Semester,
		TeacherID:  mo.TeacherID,
		CreatedAt:  mo.CreatedAt,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubjectModel(rows[i]))
	}
	return out
}
