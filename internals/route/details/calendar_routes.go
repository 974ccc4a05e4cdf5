package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayController "attendly_backend/internals/features/calendar/holidays/controller"
)

func CalendarUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := holidayController.NewHolidaysController()

	grp := private.Group("/calendar")
	grp.Get("/day-offs", ctrl.ListDayOffs)
}
