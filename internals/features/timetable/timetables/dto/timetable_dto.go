package dto

import (
	"time"

	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
	"attendly_backend/internals/features/timetable/timetables/model"
	"attendly_backend/internals/helpers/dbtime"
)

// TimetableSettings is the configuration a grid is generated from. It is
// persisted verbatim next to the grid so reports can reconstruct the shape.
type TimetableSettings struct {
	StartTime            dbtime.Tod `json:"start_time" validate:"required"`
	EndTime              dbtime.Tod `json:"end_time" validate:"required"`
	ClassDurationMinutes int        `json:"class_duration_minutes" validate:"required,min=30,max=90"`
	BreakDurationMinutes int        `json:"break_duration_minutes" validate:"min=0,max=30"`
	WorkingDays          int        `json:"working_days" validate:"required,min=1,max=6"`
	PeriodsPerDay        int        `json:"periods_per_day" validate:"required,min=1,max=10"`
}

type GenerateGridRequest struct {
	Settings TimetableSettings `json:"settings" validate:"required"`
}

type CreateTimetableRequest struct {
	Settings TimetableSettings        `json:"settings" validate:"required"`
	Subjects subjectModel.SubjectList `json:"subjects" validate:"required,min=2"`
	Grid     model.Grid               `json:"grid" validate:"required,min=1"`
}

type PatchCellRequest struct {
	DayIndex    int     `json:"day_index" validate:"min=0,max=5"`
	PeriodIndex int     `json:"period_index" validate:"min=0,max=9"`
	SubjectID   *string `json:"subject_id"` // null clears the cell
}

type TimetableResponse struct {
	TimetableID string                   `json:"timetable_id"`
	Settings    TimetableSettings        `json:"settings"`
	Subjects    subjectModel.SubjectList `json:"subjects"`
	Grid        model.Grid               `json:"grid"`
	Complete    bool                     `json:"complete"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}
