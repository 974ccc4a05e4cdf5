package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "attendly_backend/internals/features/timetable/classes/controller"
	subjectController "attendly_backend/internals/features/timetable/subjects/controller"
	timetableController "attendly_backend/internals/features/timetable/timetables/controller"
)

func TimetableUserRoutes(private fiber.Router, db *gorm.DB) {
	subjects := &subjectController.SubjectsController{DB: db}
	grp := private.Group("/subjects")
	grp.Get("/", subjects.ListSubjects)
	grp.Post("/", subjects.CreateSubject)
	grp.Delete("/:id", subjects.DeleteSubject)

	timetables := &timetableController.TimetablesController{DB: db}
	tgrp := private.Group("/timetables")
	tgrp.Post("/grid", timetables.GenerateGrid)
	tgrp.Post("/", timetables.CreateTimetable)
	tgrp.Get("/", timetables.ListTimetables)
	tgrp.Get("/latest", timetables.GetLatestTimetable)
	tgrp.Patch("/:id/cell", timetables.PatchCell)
	tgrp.Delete("/:id", timetables.DeleteTimetable)

	classes := &classController.ClassesController{DB: db}
	cgrp := private.Group("/classes")
	cgrp.Post("/", classes.CreateClass)
	cgrp.Get("/", classes.ListClasses)
	cgrp.Delete("/:id", classes.DeleteClass)
}
