// file: internals/features/campus/resources/model/resource_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// file_url points at external object storage; this service never stores bytes.
type ResourceModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubjectID     *uuid.UUID `gorm:"column:subject_id;type:uuid;index" json:"subject_id,omitempty"`
	Title         string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description   *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	ResourceType  string     `gorm:"column:resource_type;type:varchar(30);not null;default:other" json:"resource_type"`
	AccessLevel   string     `gorm:"column:access_level;type:varchar(20);not null;default:all" json:"access_level"`
	FileURL       string     `gorm:"column:file_url;type:text;not null" json:"file_url"`
	ViewCount     int        `gorm:"column:view_count;not null;default:0" json:"view_count"`
	DownloadCount int        `gorm:"column:download_count;not null;default:0" json:"download_count"`
	UploadedBy    uuid.UUID  `gorm:"column:uploaded_by;type:uuid;not null;index" json:"uploaded_by"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (ResourceModel) TableName() string { return "resources" }
