// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// teacher_id is nullable: a subject may exist before a teacher is assigned.
type SubjectModel struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code       string     `gorm:"column:code;type:varchar(40);not null;uniqueIndex" json:"code"`
	Name       string     `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Credits    int        `gorm:"column:credits;not null" json:"credits"`
	Department string     `gorm:"column:department;type:varchar(120);not null" json:"department"`
	Semester   int        `gorm:"column:semester;not null" json:"semester"`
	TeacherID  *uuid.UUID `gorm:"column:teacher_id;type:uuid;index" json:"teacher_id,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
