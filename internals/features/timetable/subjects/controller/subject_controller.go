package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	subjectDTO "attendly_backend/internals/features/timetable/subjects/dto"
	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
	subjectService "attendly_backend/internals/features/timetable/subjects/service"
	helper "attendly_backend/internals/helpers"
)

type SubjectsController struct {
	DB *gorm.DB
}

var validate = validator.New()

// LIST
// GET /api/u/subjects
func (h *SubjectsController) ListSubjects(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	reg, list, err := h.loadOrSeed(c, userID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Subjects found", subjectDTO.SubjectRegistryResponse{
		Subjects:  list,
		UpdatedAt: reg.SubjectRegistryUpdatedAt,
	})
}

// CREATE
// POST /api/u/subjects
func (h *SubjectsController) CreateSubject(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	_, list, err := h.loadOrSeed(c, userID)
	if err != nil {
		return err
	}

	list, item, err := subjectService.Add(list, req.Name, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, subjectService.ErrDuplicateSubject):
			return fiber.NewError(fiber.StatusConflict, "Subject already exists")
		case errors.Is(err, subjectService.ErrEmptySubjectName):
			return fiber.NewError(fiber.StatusBadRequest, "Subject name is required")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add subject")
	}

	if err := h.saveSubjects(c, userID, list); err != nil {
		return err
	}
	return helper.JsonCreated(c, "Subject added", item)
}

// DELETE
// DELETE /api/u/subjects/:id
func (h *SubjectsController) DeleteSubject(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	_, list, err := h.loadOrSeed(c, userID)
	if err != nil {
		return err
	}

	list, removed, err := subjectService.Remove(list, id)
	if err != nil {
		switch {
		case errors.Is(err, subjectService.ErrUnknownSubject):
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		case errors.Is(err, subjectService.ErrProtectedSubject):
			return fiber.NewError(fiber.StatusBadRequest, "The Break subject cannot be removed")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove subject")
	}

	if err := h.saveSubjects(c, userID, list); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Subject removed", removed)
}

/* =========================================================
   Internals
   ========================================================= */

// loadOrSeed fetches the user's registry row, creating one seeded with the
// default subject set on first use. Uniqueness is held by the user_id unique
// index + upsert, never by "first matching row" reads.
func (h *SubjectsController) loadOrSeed(c *fiber.Ctx, userID uuid.UUID) (subjectModel.SubjectRegistryModel, subjectModel.SubjectList, error) {
	var reg subjectModel.SubjectRegistryModel
	err := h.DB.WithContext(c.UserContext()).
		Where("subject_registry_user_id = ?", userID).
		First(&reg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		raw, mErr := json.Marshal(subjectService.DefaultSubjects())
		if mErr != nil {
			return reg, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to seed subjects")
		}
		seed := subjectModel.SubjectRegistryModel{
			SubjectRegistryUserID:   userID,
			SubjectRegistrySubjects: datatypes.JSON(raw),
		}
		// a concurrent first request may win the insert; reload either way
		if cErr := h.DB.WithContext(c.UserContext()).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "subject_registry_user_id"}},
				DoNothing: true,
			}).
			Create(&seed).Error; cErr != nil {
			return reg, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to seed subjects")
		}
		err = h.DB.WithContext(c.UserContext()).
			Where("subject_registry_user_id = ?", userID).
			First(&reg).Error
	}
	if err != nil {
		return reg, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load subjects")
	}

	var list subjectModel.SubjectList
	if err := json.Unmarshal(reg.SubjectRegistrySubjects, &list); err != nil {
		return reg, nil, fiber.NewError(fiber.StatusInternalServerError, "Corrupt subject registry")
	}
	return reg, list, nil
}

func (h *SubjectsController) saveSubjects(c *fiber.Ctx, userID uuid.UUID, list subjectModel.SubjectList) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save subjects")
	}
	row := subjectModel.SubjectRegistryModel{
		SubjectRegistryUserID:    userID,
		SubjectRegistrySubjects:  datatypes.JSON(raw),
		SubjectRegistryUpdatedAt: time.Now(),
	}
	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_registry_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subject_registry_subjects", "subject_registry_updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save subjects")
	}
	return nil
}
