package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceDTO "attendly_backend/internals/features/attendance/events/dto"
	attendanceModel "attendly_backend/internals/features/attendance/events/model"
	attendanceService "attendly_backend/internals/features/attendance/events/service"
	helper "attendly_backend/internals/helpers"
)

// ShortageThreshold is the percentage below which a subject is flagged in
// reports. 75 is the usual college attendance floor.
const ShortageThreshold = 75

type AttendanceController struct {
	DB *gorm.DB
}

var validate = validator.New()

// MARK
// POST /api/u/attendance
// One mark per subject per calendar day; marking again the same day replaces
// the earlier status instead of stacking a duplicate event.
func (h *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.SubjectID = strings.TrimSpace(req.SubjectID)
	req.SubjectName = strings.TrimSpace(req.SubjectName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	markedOn := now
	if req.MarkedOn != nil {
		markedOn, err = time.ParseInLocation(helper.DateLayout, *req.MarkedOn, time.Local)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid marked_on date")
		}
	}
	y, m, d := markedOn.Date()
	markedOn = time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	row := attendanceModel.AttendanceEventModel{
		AttendanceEventUserID:      userID,
		AttendanceEventSubjectID:   req.SubjectID,
		AttendanceEventSubjectName: req.SubjectName,
		AttendanceEventStatus:      req.Status,
		AttendanceEventMarkedOn:    markedOn,
		AttendanceEventMarkedAt:    now,
		AttendanceEventNote:        req.Note,
	}
	if req.TimetableID != nil {
		tid, pErr := uuid.Parse(*req.TimetableID)
		if pErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid timetable id")
		}
		row.AttendanceEventTimetableID = &tid
	}

	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_event_user_id"},
				{Name: "attendance_event_subject_id"},
				{Name: "attendance_event_marked_on"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_event_status",
				"attendance_event_subject_name",
				"attendance_event_marked_at",
				"attendance_event_note",
				"attendance_event_timetable_id",
				"attendance_event_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helper.JsonCreated(c, "Attendance marked", attendanceDTO.FromModel(row))
}

// HISTORY
// GET /api/u/attendance?start=YYYY-MM-DD&end=YYYY-MM-DD&subject_id=...
// Newest first. Interval bounds are optional and inclusive.
func (h *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	events, err := h.loadFiltered(c, userID)
	if err != nil {
		return err
	}

	items := make([]attendanceDTO.AttendanceEventResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, attendanceDTO.FromModel(ev))
	}
	return helper.JsonList(c, "Attendance history", items, nil)
}

// SUMMARY
// GET /api/u/attendance/summary?start=&end=&subject_id=
func (h *AttendanceController) GetSummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	events, err := h.loadFiltered(c, userID)
	if err != nil {
		return err
	}

	dist := attendanceService.CountByStatus(events)
	return helper.JsonOK(c, "Attendance summary", attendanceDTO.SummaryResponse{
		OverallPercentage: attendanceService.Percentage(dist),
		Distribution:      dist,
		TotalEvents:       dist.Total(),
	})
}

// REPORT
// GET /api/u/attendance/report?start=&end=
// Per-subject breakdown plus the subjects sitting under the threshold.
func (h *AttendanceController) GetReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	events, err := h.loadFiltered(c, userID)
	if err != nil {
		return err
	}

	reports := attendanceService.BuildSubjectReports(events)
	below := make([]string, 0)
	for _, r := range reports {
		if r.Percentage < ShortageThreshold {
			below = append(below, r.SubjectID)
		}
	}

	dist := attendanceService.CountByStatus(events)
	return helper.JsonOK(c, "Attendance report", attendanceDTO.ReportResponse{
		Threshold:         ShortageThreshold,
		OverallPercentage: attendanceService.Percentage(dist),
		Distribution:      dist,
		Subjects:          reports,
		BelowThreshold:    below,
	})
}

/* =========================================================
   Internals
   ========================================================= */

func (h *AttendanceController) loadFiltered(c *fiber.Ctx, userID uuid.UUID) ([]attendanceModel.AttendanceEventModel, error) {
	start, err := helper.ParseDateQuery(c, "start")
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseDateQuery(c, "end")
	if err != nil {
		return nil, err
	}

	var events []attendanceModel.AttendanceEventModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("attendance_event_user_id = ?", userID).
		Order("attendance_event_marked_at DESC").
		Find(&events).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
	}

	events = attendanceService.ByInterval(events, start, end)
	events = attendanceService.BySubject(events, c.Query("subject_id"))
	return events, nil
}
