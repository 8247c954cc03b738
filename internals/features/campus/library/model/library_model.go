// file: internals/features/campus/library/model/library_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// available_copies carries a DB CHECK so no code path can drive it negative.
type LibraryBookModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string    `gorm:"column:title;type:varchar(300);not null;index" json:"title"`
	Author          string    `gorm:"column:author;type:varchar(200);not null" json:"author"`
	ISBN            *string   `gorm:"column:isbn;type:varchar(20);uniqueIndex" json:"isbn,omitempty"`
	Category        *string   `gorm:"column:category;type:varchar(100)" json:"category,omitempty"`
	TotalCopies     int       `gorm:"column:total_copies;not null;default:1" json:"total_copies"`
	AvailableCopies int       `gorm:"column:available_copies;not null;default:1;check:available_copies >= 0" json:"available_copies"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (LibraryBookModel) TableName() string { return "library_books" }

type BookIssueModel struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookID     uuid.UUID  `gorm:"column:book_id;type:uuid;not null;index" json:"book_id"`
	StudentID  uuid.UUID  `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	IssuedAt   time.Time  `gorm:"column:issued_at;not null" json:"issued_at"`
	DueDate    time.Time  `gorm:"column:due_date;type:date;not null" json:"due_date"`
	ReturnDate *time.Time `gorm:"column:return_date" json:"return_date,omitempty"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:issued;index" json:"status"`
	LateFee    int        `gorm:"column:late_fee;not null;default:0" json:"late_fee"`
	IssuedBy   *uuid.UUID `gorm:"column:issued_by;type:uuid" json:"issued_by,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (BookIssueModel) TableName() string { return "book_issues" }
