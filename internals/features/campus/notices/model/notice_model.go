// file: internals/features/campus/notices/model/notice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audience scoping: target_audience decides which scoping column applies
// (class_id for "class", subject_id for "subject", neither for "all").
// Expired notices stay in the table; listings filter them out.
type NoticeModel struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title          string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content        string         `gorm:"column:content;type:text;not null" json:"content"`
	Priority       string         `gorm:"column:priority;type:varchar(20);not null;default:normal" json:"priority"`
	TargetAudience string         `gorm:"column:target_audience;type:varchar(20);not null;default:all;index" json:"target_audience"`
	ClassID        *uuid.UUID     `gorm:"column:class_id;type:uuid" json:"class_id,omitempty"`
	SubjectID      *uuid.UUID     `gorm:"column:subject_id;type:uuid" json:"subject_id,omitempty"`
	Attachments    datatypes.JSON `gorm:"column:attachments;type:jsonb" json:"attachments,omitempty"`
	ExpireAt       *time.Time     `gorm:"column:expire_at;index" json:"expire_at,omitempty"`
	ViewCount      int            `gorm:"column:view_count;not null;default:0" json:"view_count"`
	CreatedBy      uuid.UUID      `gorm:"column:created_by;type:uuid;not null;index" json:"created_by"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (NoticeModel) TableName() string { return "notices" }
