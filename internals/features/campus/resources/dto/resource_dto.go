// file: internals/features/campus/resources/dto/resource_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"cukportal_backend/internals/constants"
	m "cukportal_backend/internals/features/campus/resources/model"
	helper "cukportal_backend/internals/helpers"
)

type CreateResourceRequest struct {
	SubjectID    *uuid.UUID `json:"subject_id"`
	Title        string     `json:"title" validate:"required,min=3,max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=5000"`
	ResourceType string     `json:"resource_type" validate:"omitempty,oneof=lecture_notes presentation video_tutorial document other"`
	AccessLevel  string     `json:"access_level" validate:"omitempty,oneof=all students teachers"`
	FileURL      string     `json:"file_url" validate:"required,url"`
}

func (r *CreateResourceRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.FileURL = strings.TrimSpace(r.FileURL)
	if r.ResourceType == "" {
		r.ResourceType = constants.ResourceOther
	}
	if r.AccessLevel == "" {
		r.AccessLevel = "all"
	}
}

func (r CreateResourceRequest) ToModel(uploadedBy uuid.UUID) m.ResourceModel {
	return m.ResourceModel{
		SubjectID:    r.SubjectID,
		Title:        r.Title,
		Description:  r.Description,
		ResourceType: r.ResourceType,
		AccessLevel:  r.AccessLevel,
		FileURL:      r.FileURL,
		UploadedBy:   uploadedBy,
	}
}

type UpdateResourceRequest struct {
	Title       helper.PatchField[string] `json:"title"`
	Description helper.PatchField[string] `json:"description"`
	AccessLevel helper.PatchField[string] `json:"access_level"`
	FileURL     helper.PatchField[string] `json:"file_url"`
}

func (r UpdateResourceRequest) Apply(mo *m.ResourceModel) map[string][]string {
	fe := map[string][]string{}

	if v, ok := r.Title.Get(); ok && v != nil {
		t := strings.TrimSpace(*v)
		if len(t) < 3 || len(t) > 200 {
			fe["title"] = append(fe["title"], "must be between 3 and 200 characters")
		} else {
			mo.Title = t
		}
	}
	if v, ok := r.Description.Get(); ok {
		mo.Description = v
	}
	if v, ok := r.AccessLevel.Get(); ok && v != nil {
		switch *v {
		case "all", "students", "teachers":
			mo.AccessLevel = *v
		default:
			fe["access_level"] = append(fe["access_level"], "must be one of all, students, teachers")
		}
	}
	if v, ok := r.FileURL.Get(); ok && v != nil {
		u := strings.TrimSpace(*v)
		if u == "" {
			fe["file_url"] = append(fe["file_url"], "must not be empty")
		} else {
			mo.FileURL = u
		}
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}
