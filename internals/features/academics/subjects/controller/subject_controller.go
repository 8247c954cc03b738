// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "cukportal_backend/internals/features/academics/subjects/dto"
	subjectModel "cukportal_backend/internals/features/academics/subjects/model"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/a/subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("lower(code) = lower(?)", req.Code).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check code uniqueness")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Subject code already in use")
		}

		if err := tx.Create(&mo).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Subject code already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Subject created", subjectDTO.FromSubjectModel(mo))
}

// GET BY ID
// GET /api/u/subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo subjectModel.SubjectModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	return helper.JsonOK(c, "Subject found", subjectDTO.FromSubjectModel(mo))
}

// LIST
// GET /api/u/subjects?q=&department=&semester=&teacher_id=&order_by=&sort=&page=&per_page=
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	var q subjectDTO.ListSubjectQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&subjectModel.SubjectModel{})
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		kw := "%" + strings.ToLower(strings.TrimSpace(*q.Q)) + "%"
		tx = tx.Where("(LOWER(code) LIKE ? OR LOWER(name) LIKE ?)", kw, kw)
	}
	if q.Department != nil && strings.TrimSpace(*q.Department) != "" {
		tx = tx.Where("department = ?", strings.TrimSpace(*q.Department))
	}
	if q.Semester != nil {
		tx = tx.Where("semester = ?", *q.Semester)
	}
	if q.TeacherID != nil {
		tx = tx.Where("teacher_id = ?", *q.TeacherID)
	}

	// order by whitelist
	orderBy := "created_at"
	if q.OrderBy != nil {
		switch strings.ToLower(*q.OrderBy) {
		case "code":
			orderBy = "code"
		case "name":
			orderBy = "name"
		case "created_at":
			orderBy = "created_at"
		}
	}
	sort := "ASC"
	if q.Sort != nil && strings.ToLower(*q.Sort) == "desc" {
		sort = "DESC"
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := tx.
		Order(orderBy + " " + sort).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	return helper.JsonList(c, "",
		subjectDTO.FromSubjectModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

// UPDATE (partial)
// PATCH /api/a/subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	var mo subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&mo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
		}

		if req.Code.Present && req.Code.Value != nil && !strings.EqualFold(*req.Code.Value, mo.Code) {
			var cnt int64
			if err := tx.Model(&subjectModel.SubjectModel{}).
				Where("lower(code) = lower(?) AND id <> ?", *req.Code.Value, mo.ID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check code uniqueness")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Subject code already in use")
			}
		}

		req.Apply(&mo)
		if err := tx.Save(&mo).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Subject code already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Subject updated", subjectDTO.FromSubjectModel(mo))
}

// DELETE
// DELETE /api/a/subjects/:id
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo subjectModel.SubjectModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	if err := h.DB.Delete(&subjectModel.SubjectModel{}, "id = ?", id).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "constraint") || strings.Contains(msg, "foreign") || strings.Contains(msg, "violat") {
			return fiber.NewError(fiber.StatusBadRequest, "Subject still has related records")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
	}

	return helper.JsonDeleted(c, "Subject deleted", subjectDTO.FromSubjectModel(mo))
}
