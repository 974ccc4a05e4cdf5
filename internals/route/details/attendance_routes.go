package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "attendly_backend/internals/features/attendance/events/controller"
)

func AttendanceUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := &attendanceController.AttendanceController{DB: db}

	grp := private.Group("/attendance")
	grp.Post("/", ctrl.MarkAttendance)
	grp.Get("/", ctrl.ListAttendance)
	grp.Get("/summary", ctrl.GetSummary)
	grp.Get("/report", ctrl.GetReport)
}
