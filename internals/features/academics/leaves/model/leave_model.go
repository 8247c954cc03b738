// file: internals/features/academics/leaves/model/leave_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaveApplicationModel struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID       uuid.UUID  `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	LeaveType       string     `gorm:"column:leave_type;type:varchar(30);not null" json:"leave_type"`
	FromDate        time.Time  `gorm:"column:from_date;type:date;not null" json:"from_date"`
	ToDate          time.Time  `gorm:"column:to_date;type:date;not null" json:"to_date"`
	Reason          string     `gorm:"column:reason;type:text;not null" json:"reason"`
	ContactInfo     *string    `gorm:"column:contact_info;type:varchar(100)" json:"contact_info,omitempty"`
	Priority        string     `gorm:"column:priority;type:varchar(20);not null;default:normal" json:"priority"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:pending;index" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	ReviewedBy      *uuid.UUID `gorm:"column:reviewed_by;type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (LeaveApplicationModel) TableName() string { return "leave_applications" }
