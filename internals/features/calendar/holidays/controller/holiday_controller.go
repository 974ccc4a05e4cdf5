package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"attendly_backend/internals/configs"
	holidayService "attendly_backend/internals/features/calendar/holidays/service"
	helper "attendly_backend/internals/helpers"
)

type HolidaysController struct {
	Client *holidayService.Client
}

func NewHolidaysController() *HolidaysController {
	return &HolidaysController{
		Client: holidayService.NewClient(
			configs.CalendarAPIBase,
			configs.CalendarAPIKey,
			configs.GetEnv("CALENDAR_ID", "en.indian#holiday@group.v.calendar.google.com"),
		),
	}
}

// DAY-OFFS
// GET /api/u/calendar/day-offs?start=YYYY-MM-DD&end=YYYY-MM-DD
// Defaults to the next 30 days when no window is given.
func (h *HolidaysController) ListDayOffs(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	start, err := helper.ParseDateQuery(c, "start")
	if err != nil {
		return err
	}
	end, err := helper.ParseDateQuery(c, "end")
	if err != nil {
		return err
	}

	now := time.Now()
	if start == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		start = &today
	}
	if end == nil {
		until := start.AddDate(0, 0, 30)
		end = &until
	}
	if end.Before(*start) {
		return fiber.NewError(fiber.StatusBadRequest, "End date is before start date")
	}

	offs, err := h.Client.ListDayOffs(c.UserContext(), *start, *end)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Holiday feed unavailable")
	}
	return helper.JsonList(c, "Day-offs found", offs, nil)
}
