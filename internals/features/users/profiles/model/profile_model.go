// file: internals/features/users/profiles/model/profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the identity provider's user by user_id. Profiles are
// never hard-deleted; presence follows the identity lifecycle.
type ProfileModel struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName         string    `gorm:"column:full_name;type:varchar(160);not null" json:"full_name"`
	Email            string    `gorm:"column:email;type:varchar(160);not null" json:"email"`
	Department       *string   `gorm:"column:department;type:varchar(120)" json:"department,omitempty"`
	EnrollmentNumber *string   `gorm:"column:enrollment_number;type:varchar(40)" json:"enrollment_number,omitempty"`
	EmployeeID       *string   `gorm:"column:employee_id;type:varchar(40)" json:"employee_id,omitempty"`
	Semester         *int      `gorm:"column:semester" json:"semester,omitempty"`
	Phone            *string   `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	AvatarURL        *string   `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
