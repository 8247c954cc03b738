// file: internals/features/campus/library/controller/library_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cukportal_backend/internals/constants"
	libraryDTO "cukportal_backend/internals/features/campus/library/dto"
	libraryModel "cukportal_backend/internals/features/campus/library/model"
	libraryService "cukportal_backend/internals/features/campus/library/service"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type LibraryController struct {
	DB *gorm.DB
}

// ADD BOOK
// POST /api/a/library/books
func (h *LibraryController) CreateBook(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Only admins may add books")
	}

	var req libraryDTO.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel()
	if err := h.DB.Create(&mo).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "A book with this ISBN already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add book")
	}
	return helper.JsonCreated(c, "Book added", mo)
}

// CATALOG
// GET /api/u/library/books
func (h *LibraryController) ListBooks(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	tx := h.DB.Session(&gorm.Session{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("title ILIKE ? OR author ILIKE ?", like, like)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		tx = tx.Where("category = ?", cat)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := tx.Model(&libraryModel.LibraryBookModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count books")
	}

	var rows []libraryModel.LibraryBookModel
	if err := tx.
		Order("title ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch books")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ISSUE (conditional decrement and issue insert in one transaction)
// POST /api/t/library/issues
func (h *LibraryController) IssueBook(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only staff may issue books")
	}

	var req libraryDTO.IssueBookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	now := time.Now()
	dueDate := now.AddDate(0, 0, libraryService.DefaultLoanDays)
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err == nil {
			dueDate = d
		}
	}

	issue := libraryModel.BookIssueModel{
		BookID:    req.BookID,
		StudentID: req.StudentID,
		IssuedAt:  now,
		DueDate:   dueDate,
		Status:    constants.BookIssued,
		IssuedBy:  &actor.UserID,
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// the guard and the decrement must be one statement; a read-then-write
		// pair would let two issues drain the last copy twice
		res := tx.Model(&libraryModel.LibraryBookModel{}).
			Where("id = ? AND available_copies > 0", req.BookID).
			Update("available_copies", gorm.Expr("available_copies - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&libraryModel.LibraryBookModel{}).
				Where("id = ?", req.BookID).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Book not found")
			}
			return fiber.NewError(fiber.StatusConflict, "Book not available")
		}

		return tx.Create(&issue).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue book")
	}

	return helper.JsonCreated(c, "Book issued", issue)
}

// RETURN (flip status, restore the copy, charge the late fee)
// PATCH /api/t/library/issues/:id/return
func (h *LibraryController) ReturnBook(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only staff may process returns")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid issue id")
	}

	var issue libraryModel.BookIssueModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&issue, "id = ?", id).Error; err != nil {
			return err
		}
		if issue.Status == constants.BookReturned {
			return fiber.NewError(fiber.StatusConflict, "Book has already been returned")
		}

		now := time.Now()
		issue.Status = constants.BookReturned
		issue.ReturnDate = &now
		issue.LateFee = libraryService.LateFee(issue.DueDate, now)

		if err := tx.Model(&libraryModel.BookIssueModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":      issue.Status,
				"return_date": issue.ReturnDate,
				"late_fee":    issue.LateFee,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&libraryModel.LibraryBookModel{}).
			Where("id = ?", issue.BookID).
			Update("available_copies", gorm.Expr("available_copies + 1")).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Issue record not found")
		}
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to return book")
	}

	return helper.JsonUpdated(c, "Book returned", issue)
}

// OWN ISSUES
// GET /api/s/library/issues
func (h *LibraryController) ListMyIssues(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	var rows []libraryModel.BookIssueModel
	if err := h.DB.
		Where("student_id = ?", actor.UserID).
		Order("issued_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch issues")
	}
	return helper.JsonOK(c, "", rows)
}
