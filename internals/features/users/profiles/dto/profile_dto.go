// file: internals/features/users/profiles/dto/profile_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "cukportal_backend/internals/features/users/profiles/model"
	helper "cukportal_backend/internals/helpers"
)

type CreateProfileRequest struct {
	UserID           uuid.UUID `json:"user_id" validate:"required"`
	FullName         string    `json:"full_name" validate:"required,min=1,max=160"`
	Email            string    `json:"email" validate:"required,email,max=160"`
	Department       *string   `json:"department"`
	EnrollmentNumber *string   `json:"enrollment_number"`
	EmployeeID       *string   `json:"employee_id"`
	Semester         *int      `json:"semester" validate:"omitempty,min=1,max=12"`
	Phone            *string   `json:"phone"`
}

func (r *CreateProfileRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	trimPtr(&r.Department)
	trimPtr(&r.EnrollmentNumber)
	trimPtr(&r.EmployeeID)
	trimPtr(&r.Phone)
}

func (r CreateProfileRequest) ToModel() m.ProfileModel {
	return m.ProfileModel{
		UserID:           r.UserID,
		FullName:         r.FullName,
		Email:            r.Email,
		Department:       r.Department,
		EnrollmentNumber: r.EnrollmentNumber,
		EmployeeID:       r.EmployeeID,
		Semester:         r.Semester,
		Phone:            r.Phone,
	}
}

type UpdateProfileRequest struct {
	FullName   helper.PatchField[string]  `json:"full_name"`
	Department helper.PatchField[*string] `json:"department"`
	Semester   helper.PatchField[*int]    `json:"semester"`
	Phone      helper.PatchField[*string] `json:"phone"`
	AvatarURL  helper.PatchField[*string] `json:"avatar_url"`
}

func (p UpdateProfileRequest) Apply(mo *m.ProfileModel) {
	if p.FullName.Present && p.FullName.Value != nil {
		mo.FullName = strings.TrimSpace(*p.FullName.Value)
	}
	if p.Department.Present {
		if p.Department.Value == nil {
			mo.Department = nil
		} else {
			mo.Department = *p.Department.Value
		}
	}
	if p.Semester.Present {
		if p.Semester.Value == nil {
			mo.Semester = nil
		} else {
			mo.Semester = *p.Semester.Value
		}
	}
	if p.Phone.Present {
		if p.Phone.Value == nil {
			mo.Phone = nil
		} else {
			mo.Phone = *p.Phone.Value
		}
	}
	if p.AvatarURL.Present {
		if p.AvatarURL.Value == nil {
			mo.AvatarURL = nil
		} else {
			mo.AvatarURL = *p.AvatarURL.Value
		}
	}
}

type ProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Department       *string   `json:"department,omitempty"`
	EnrollmentNumber *string   `json:"enrollment_number,omitempty"`
	EmployeeID       *string   `json:"employee_id,omitempty"`
	Semester         *int      `json:"semester,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromProfileModel(mo m.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ID:               mo.ID,
		UserID:           mo.UserID,
		FullName:         mo.FullName,
		Email:            mo.Email,
		Department:       mo.Department,
		EnrollmentNumber: mo.EnrollmentNumber,
		EmployeeID:       mo.EmployeeID,
		Semester:         mo.Semester,
		Phone:            mo.Phone,
		AvatarURL:        mo.AvatarURL,
		CreatedAt:        mo.CreatedAt,
		UpdatedAt:        mo.UpdatedAt,
	}
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
