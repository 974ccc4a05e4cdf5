package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
	subjectService "attendly_backend/internals/features/timetable/subjects/service"
	timetableDTO "attendly_backend/internals/features/timetable/timetables/dto"
	timetableModel "attendly_backend/internals/features/timetable/timetables/model"
	timetableService "attendly_backend/internals/features/timetable/timetables/service"
	helper "attendly_backend/internals/helpers"
)

type TimetablesController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GENERATE
// POST /api/u/timetables/grid
// Pure: builds an empty grid from settings without touching storage, so the
// client can start editing before anything is saved.
func (h *TimetablesController) GenerateGrid(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	var req timetableDTO.GenerateGridRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	grid, err := timetableService.GenerateGrid(req.Settings.WorkingDays, req.Settings.PeriodsPerDay)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid timetable configuration")
	}
	return helper.JsonOK(c, "Grid generated", grid)
}

// CREATE
// POST /api/u/timetables
// Persists a finished timetable. The grid must be fully assigned and the
// subject snapshot must carry at least two subjects.
func (h *TimetablesController) CreateTimetable(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req timetableDTO.CreateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if len(req.Subjects) < subjectService.MinSubjects {
		return fiber.NewError(fiber.StatusBadRequest, "At least 2 subjects are required")
	}
	if len(req.Grid) != req.Settings.WorkingDays {
		return fiber.NewError(fiber.StatusBadRequest, "Grid does not match the configured working days")
	}
	for _, row := range req.Grid {
		if len(row.Periods) != req.Settings.PeriodsPerDay {
			return fiber.NewError(fiber.StatusBadRequest, "Grid does not match the configured periods per day")
		}
	}
	if !timetableService.IsComplete(req.Grid) {
		return fiber.NewError(fiber.StatusBadRequest, "All periods must be assigned before saving")
	}

	settingsRaw, err := json.Marshal(req.Settings)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save timetable")
	}
	subjectsRaw, err := json.Marshal(req.Subjects)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save timetable")
	}
	gridRaw, err := json.Marshal(req.Grid)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save timetable")
	}

	row := timetableModel.TimetableModel{
		TimetableUserID:   userID,
		TimetableSettings: datatypes.JSON(settingsRaw),
		TimetableSubjects: datatypes.JSON(subjectsRaw),
		TimetableGrid:     datatypes.JSON(gridRaw),
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save timetable")
	}

	resp, err := h.toResponse(row)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Timetable saved", resp)
}

// GET MINE
// GET /api/u/timetables/latest
func (h *TimetablesController) GetLatestTimetable(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var row timetableModel.TimetableModel
	err = h.DB.WithContext(c.UserContext()).
		Where("timetable_user_id = ?", userID).
		Order("timetable_created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "No timetable yet")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load timetable")
	}

	resp, err := h.toResponse(row)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Timetable found", resp)
}

// LIST
// GET /api/u/timetables
func (h *TimetablesController) ListTimetables(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&timetableModel.TimetableModel{}).
		Where("timetable_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load timetables")
	}

	var rows []timetableModel.TimetableModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("timetable_user_id = ?", userID).
		Order("timetable_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load timetables")
	}

	items := make([]timetableDTO.TimetableResponse, 0, len(rows))
	for _, row := range rows {
		resp, rErr := h.toResponse(row)
		if rErr != nil {
			return rErr
		}
		items = append(items, resp)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Timetables found", items, &pagination)
}

// PATCH CELL
// PATCH /api/u/timetables/:id/cell
func (h *TimetablesController) PatchCell(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	timetableID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid timetable id")
	}

	var req timetableDTO.PatchCellRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row timetableModel.TimetableModel
	err = h.DB.WithContext(c.UserContext()).
		Where("timetable_id = ? AND timetable_user_id = ?", timetableID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Timetable not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load timetable")
	}

	var grid timetableModel.Grid
	if err := json.Unmarshal(row.TimetableGrid, &grid); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Corrupt timetable grid")
	}
	var subjects subjectModel.SubjectList
	if err := json.Unmarshal(row.TimetableSubjects, &subjects); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Corrupt timetable subjects")
	}

	grid, err = timetableService.SetCell(grid, req.DayIndex, req.PeriodIndex, subjects, req.SubjectID)
	if err != nil {
		switch {
		case errors.Is(err, timetableService.ErrOutOfRange):
			return fiber.NewError(fiber.StatusBadRequest, "Cell coordinate out of range")
		case errors.Is(err, timetableService.ErrUnknownSubject):
			return fiber.NewError(fiber.StatusNotFound, "Subject not found in this timetable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cell")
	}

	gridRaw, err := json.Marshal(grid)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cell")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Model(&timetableModel.TimetableModel{}).
		Where("timetable_id = ? AND timetable_user_id = ?", timetableID, userID).
		Update("timetable_grid", datatypes.JSON(gridRaw)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cell")
	}

	row.TimetableGrid = datatypes.JSON(gridRaw)
	resp, err := h.toResponse(row)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Cell updated", resp)
}

// DELETE
// DELETE /api/u/timetables/:id
func (h *TimetablesController) DeleteTimetable(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	timetableID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid timetable id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("timetable_id = ? AND timetable_user_id = ?", timetableID, userID).
		Delete(&timetableModel.TimetableModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete timetable")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Timetable not found")
	}
	return helper.JsonDeleted(c, "Timetable deleted", fiber.Map{"timetable_id": timetableID})
}

/* =========================================================
   Internals
   ========================================================= */

func (h *TimetablesController) toResponse(row timetableModel.TimetableModel) (timetableDTO.TimetableResponse, error) {
	var resp timetableDTO.TimetableResponse

	var settings timetableDTO.TimetableSettings
	if err := json.Unmarshal(row.TimetableSettings, &settings); err != nil {
		return resp, fiber.NewError(fiber.StatusInternalServerError, "Corrupt timetable settings")
	}
	var subjects subjectModel.SubjectList
	if err := json.Unmarshal(row.TimetableSubjects, &subjects); err != nil {
		return resp, fiber.NewError(fiber.StatusInternalServerError, "Corrupt timetable subjects")
	}
	var grid timetableModel.Grid
	if err := json.Unmarshal(row.TimetableGrid, &grid); err != nil {
		return resp, fiber.NewError(fiber.StatusInternalServerError, "Corrupt timetable grid")
	}

	return timetableDTO.TimetableResponse{
		TimetableID: row.TimetableID.String(),
		Settings:    settings,
		Subjects:    subjects,
		Grid:        grid,
		Complete:    timetableService.IsComplete(grid),
		CreatedAt:   row.TimetableCreatedAt,
		UpdatedAt:   row.TimetableUpdatedAt,
	}, nil
}
