// file: internals/features/campus/resources/controller/resource_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	resourceDTO "cukportal_backend/internals/features/campus/resources/dto"
	resourceModel "cukportal_backend/internals/features/campus/resources/model"
	helper "cukportal_backend/internals/helpers"
	helperAuth "cukportal_backend/internals/helpers/auth"
)

type ResourceController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/t/resources
func (h *ResourceController) CreateResource(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return fiber.NewError(fiber.StatusForbidden, "Only teachers may upload resources")
	}

	var req resourceDTO.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidationErrors(req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	mo := req.ToModel(actor.UserID)
	if err := h.DB.Create(&mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create resource")
	}
	return helper.JsonCreated(c, "Resource created", mo)
}

// UPDATE (uploader or admin)
// PATCH /api/t/resources/:id
func (h *ResourceController) UpdateResource(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	mo, ferr := h.fetchOwned(c, actor)
	if ferr != nil {
		return ferr
	}

	var req resourceDTO.UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if fe := req.Apply(mo); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if err := h.DB.Save(mo).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update resource")
	}
	return helper.JsonUpdated(c, "Resource updated", mo)
}

// DELETE (uploader or admin)
// DELETE /api/t/resources/:id
func (h *ResourceController) DeleteResource(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return err
	}

	mo, ferr := h.fetchOwned(c, actor)
	if ferr != nil {
		return ferr
	}

	if err := h.DB.Delete(&resourceModel.ResourceModel{}, "id = ?", mo.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete resource")
	}
	return helper.JsonDeleted(c, "Resource deleted", fiber.Map{"id": mo.ID})
}

// LIST (filterable by subject and type)
// GET /api/u/resources
func (h *ResourceController) ListResources(c *fiber.Ctx) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	tx := h.DB.Session(&gorm.Session{})
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		subjectID, err := uuid.Parse(sid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
		}
		tx = tx.Where("subject_id = ?", subjectID)
	}
	if rt := strings.TrimSpace(c.Query("resource_type")); rt != "" {
		tx = tx.Where("resource_type = ?", rt)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := tx.Model(&resourceModel.ResourceModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count resources")
	}

	var rows []resourceModel.ResourceModel
	if err := tx.
		Order("created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch resources")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// VIEW COUNTER
// POST /api/u/resources/:id/view
func (h *ResourceController) IncrementViewCount(c *fiber.Ctx) error {
	return h.incrementCounter(c, "view_count", "View recorded")
}

// DOWNLOAD COUNTER
// POST /api/u/resources/:id/download
func (h *ResourceController) IncrementDownloadCount(c *fiber.Ctx) error {
	return h.incrementCounter(c, "download_count", "Download recorded")
}

func (h *ResourceController) incrementCounter(c *fiber.Ctx, column, msg string) error {
	if _, err := helperAuth.ActorFromContext(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Model(&resourceModel.ResourceModel{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record "+column)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"id": id})
}

func (h *ResourceController) fetchOwned(c *fiber.Ctx, actor helperAuth.Actor) (*resourceModel.ResourceModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mo resourceModel.ResourceModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Resource not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch resource")
	}
	if mo.UploadedBy != actor.UserID && !actor.IsAdmin() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not the uploader of this resource")
	}
	return &mo, nil
}
