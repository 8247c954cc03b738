// file: internals/features/campus/library/dto/library_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "cukportal_backend/internals/features/campus/library/model"
)

type CreateBookRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=300"`
	Author      string  `json:"author" validate:"required,min=1,max=200"`
	ISBN        *string `json:"isbn" validate:"omitempty,min=10,max=20"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	TotalCopies int     `json:"total_copies" validate:"required,min=1,max=1000"`
}

func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
}

// New books start fully available.
func (r CreateBookRequest) ToModel() m.LibraryBookModel {
	return m.LibraryBookModel{
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		Category:        r.Category,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.TotalCopies,
	}
}

type IssueBookRequest struct {
	BookID    uuid.UUID `json:"book_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	// optional; defaults to issued_at + DefaultLoanDays
	DueDate *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}
