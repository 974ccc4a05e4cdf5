package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "attendly_backend/internals/features/timetable/classes/dto"
	classModel "attendly_backend/internals/features/timetable/classes/model"
	helper "attendly_backend/internals/helpers"
)

type ClassesController struct {
	DB *gorm.DB
}

var validate = validator.New()

// CREATE
// POST /api/u/classes
func (h *ClassesController) CreateClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row, err := req.ToModel(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class time")
	}
	if !row.ClassEndTime.After(row.ClassStartTime.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "End time must be after start time")
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save class")
	}
	return helper.JsonCreated(c, "Class added", classDTO.FromModel(row))
}

// LIST
// GET /api/u/classes
func (h *ClassesController) ListClasses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("class_user_id = ?", userID).
		Order("class_start_time ASC, class_subject ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classes")
	}

	items := make([]classDTO.ClassResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, classDTO.FromModel(row))
	}
	return helper.JsonList(c, "Classes found", items, nil)
}

// DELETE
// DELETE /api/u/classes/:id
func (h *ClassesController) DeleteClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_user_id = ?", classID, userID).
		Delete(&classModel.ClassModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": classID})
}
