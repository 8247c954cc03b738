// file: internals/features/campus/notices/controller/notice_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cukportal_backend/internals/constants"
	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
	noticeDTO "cukportal_backend/internals/features/campus/notices/dto"
	noticeModel "cukportal_backend/internals/features/campus/notices/model"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type NoticeController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/t/notices
func (h *NoticeController) CreateNotice(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may publish notices")
	}

	var req noticeDTO.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if fe := req.AudienceErrors(); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel(actor.UserID)
	if err := h.DB.Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create notice")
	}
	return helper.JsonCreated(c, "Notice published", mo)
}

// UPDATE (creator or admin)
// PATCH /api/t/notices/:id
func (h *NoticeController) UpdateNotice(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	mo, ferr := h.fetchOwned(c, actor)
	if ferr != nil {
		return ferr
	}

	var req noticeDTO.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := req.Apply(mo); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if err := h.DB.Save(mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update notice")
	}
	return helper.JsonUpdated(c, "Notice updated", mo)
}

// DELETE (creator or admin)
// DELETE /api/t/notices/:id
func (h *NoticeController) DeleteNotice(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	mo, ferr := h.fetchOwned(c, actor)
	if ferr != nil {
		return ferr
	}

	if err := h.DB.Delete(&noticeModel.NoticeModel{}, "id = ?", mo.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete notice")
	}
	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"id": mo.ID})
}

// LIST ACTIVE (audience-scoped, expired excluded)
// GET /api/u/notices
func (h *NoticeController) ListActiveNotices(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	tx := h.DB.Where("expire_at IS NULL OR expire_at > ?", time.Now())

	if actor.IsStudent() {
		subjectIDs, err := rosterService.EnrolledSubjectIDs(h.DB, actor.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve enrollments")
		}

		scope := h.DB.Where("target_audience = ?", constants.AudienceAll)
		if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
			cid, err := uuid.Parse(classID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
			}
			scope = scope.Or("target_audience = ? AND class_id = ?", constants.AudienceClass, cid)
		}
		if len(subjectIDs) > 0 {
			scope = scope.Or("target_audience = ? AND subject_id IN ?", constants.AudienceSubject, subjectIDs)
		}
		tx = tx.Where(scope)
	}

	// reusable for both count and page fetch
	tx = tx.Session(&gorm.Session{})

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := tx.Model(&noticeModel.NoticeModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count notices")
	}

	var rows []noticeModel.NoticeModel
	if err := tx.
		Order("created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch notices")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// LIST OWN (author)
// GET /api/t/notices
func (h *NoticeController) ListMyNotices(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	var rows []noticeModel.NoticeModel
	if err := h.DB.
		Where("created_by = ?", actor.UserID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch notices")
	}
	return helper.JsonOK(c, "", rows)
}

// VIEW COUNTER (monotonic; allowed on expired notices already rendered)
// POST /api/u/notices/:id/view
func (h *NoticeController) IncrementViewCount(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Model(&noticeModel.NoticeModel{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record view")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notice not found")
	}
	return helper.JsonUpdated(c, "View recorded", fiber.Map{"id": id})
}

func (h *NoticeController) fetchOwned(c *fiber.Ctx, actor helperAuth.Actor) (*noticeModel.NoticeModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo noticeModel.NoticeModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Notice not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch notice")
	}
	if mo.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not the author of this notice")
	}
	return &mo, nil
}
