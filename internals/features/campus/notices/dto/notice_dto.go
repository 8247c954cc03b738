// file: internals/features/campus/notices/dto/notice_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"cukportal_backend/internals/constants"
	m "cukportal_backend/internals/features/campus/notices/model"
	helper "cukportal_backend/internals/helpers"
)

type CreateNoticeRequest struct {
	Title          string         `json:"title" validate:"required,min=3,max=200"`
	Content        string         `json:"content" validate:"required,min=3"`
	Priority       string         `json:"priority" validate:"omitempty,oneof=normal important urgent"`
	TargetAudience string         `json:"target_audience" validate:"omitempty,oneof=all class subject"`
	ClassID        *uuid.UUID     `json:"class_id"`
	SubjectID      *uuid.UUID     `json:"subject_id"`
	Attachments    datatypes.JSON `json:"attachments"`
	ExpireAt       *time.Time     `json:"expire_at"`
}

func (r *CreateNoticeRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	if r.Priority == "" {
		r.Priority = constants.PriorityNormal
	}
	if r.TargetAudience == "" {
		r.TargetAudience = constants.AudienceAll
	}
}

// AudienceErrors enforces the scoping column matching the audience kind.
func (r CreateNoticeRequest) AudienceErrors() map[string][]string {
	switch r.TargetAudience {
	case constants.AudienceClass:
		if r.ClassID == nil {
			return map[string][]string{"class_id": {"required when target_audience is class"}}
		}
	case constants.AudienceSubject:
		if r.SubjectID == nil {
			return map[string][]string{"subject_id": {"required when target_audience is subject"}}
		}
	}
	return nil
}

func (r CreateNoticeRequest) ToModel(createdBy uuid.UUID) m.NoticeModel {
	return m.NoticeModel{
		Title:          r.Title,
		Content:        r.Content,
		Priority:       r.Priority,
		TargetAudience: r.TargetAudience,
		ClassID:        r.ClassID,
		SubjectID:      r.SubjectID,
		Attachments:    r.Attachments,
		ExpireAt:       r.ExpireAt,
		CreatedBy:      createdBy,
	}
}

type UpdateNoticeRequest struct {
	Title    helper.PatchField[string]    `json:"title"`
	Content  helper.PatchField[string]    `json:"content"`
	Priority helper.PatchField[string]    `json:"priority"`
	ExpireAt helper.PatchField[time.Time] `json:"expire_at"`
}

func (r UpdateNoticeRequest) Apply(mo *m.NoticeModel) map[string][]string {
	fe := map[string][]string{}

	if v, ok := r.Title.Get(); ok && v != nil {
		t := strings.TrimSpace(*v)
		if len(t) < 3 || len(t) > 200 {
			fe["title"] = append(fe["title"], "must be between 3 and 200 characters")
		} else {
			mo.Title = t
		}
	}
	if v, ok := r.Content.Get(); ok && v != nil {
		t := strings.TrimSpace(*v)
		if len(t) < 3 {
			fe["content"] = append(fe["content"], "must be at least 3 characters")
		} else {
			mo.Content = t
		}
	}
	if v, ok := r.Priority.Get(); ok && v != nil {
		switch *v {
		case constants.PriorityNormal, constants.PriorityImportant, constants.PriorityUrgent:
			mo.Priority = *v
		default:
			fe["priority"] = append(fe["priority"], "must be one of normal, important, urgent")
		}
	}
	if v, ok := r.ExpireAt.Get(); ok {
		mo.ExpireAt = v
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}
