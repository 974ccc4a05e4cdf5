package service

import (
	"errors"

	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
	"attendly_backend/internals/features/timetable/timetables/model"
)

var (
	ErrInvalidConfiguration = errors.New("invalid timetable configuration")
	ErrOutOfRange           = errors.New("grid coordinate out of range")
	ErrUnknownSubject       = errors.New("unknown subject")
)

const (
	MinWorkingDays   = 1
	MaxWorkingDays   = 6
	MinPeriodsPerDay = 1
	MaxPeriodsPerDay = 10
)

// Day labels in fixed order, truncated to the working-day count.
var dayLabels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// GenerateGrid builds an empty workingDays×periodsPerDay grid. Deterministic,
// no side effects.
func GenerateGrid(workingDays, periodsPerDay int) (model.Grid, error) {
	if workingDays < MinWorkingDays || workingDays > MaxWorkingDays {
		return nil, ErrInvalidConfiguration
	}
	if periodsPerDay < MinPeriodsPerDay || periodsPerDay > MaxPeriodsPerDay {
		return nil, ErrInvalidConfiguration
	}

	grid := make(model.Grid, workingDays)
	for i := 0; i < workingDays; i++ {
		grid[i] = model.DayRow{
			Day:     dayLabels[i],
			Periods: make([]model.Cell, periodsPerDay),
		}
	}
	return grid, nil
}

// SetCell returns a new grid with exactly one cell changed. subjectID nil
// clears the cell; otherwise the subject must resolve in the given list and
// its name and color are copied into the cell as of now.
func SetCell(grid model.Grid, dayIndex, periodIndex int, subjects subjectModel.SubjectList, subjectID *string) (model.Grid, error) {
	if dayIndex < 0 || dayIndex >= len(grid) {
		return nil, ErrOutOfRange
	}
	if periodIndex < 0 || periodIndex >= len(grid[dayIndex].Periods) {
		return nil, ErrOutOfRange
	}

	cell := model.Cell{}
	if subjectID != nil && *subjectID != "" {
		subject, found := subjects.FindByID(*subjectID)
		if !found {
			return nil, ErrUnknownSubject
		}
		name := subject.Name
		color := subject.Color
		cell = model.Cell{SubjectID: &subject.ID, Subject: &name, Color: &color}
	}

	out := grid.Clone()
	out[dayIndex].Periods[periodIndex] = cell
	return out, nil
}

// IsComplete reports whether every cell across every row has a subject bound.
// Used as the persistence gate; the editor itself never enforces it.
func IsComplete(grid model.Grid) bool {
	if len(grid) == 0 {
		return false
	}
	for _, row := range grid {
		for _, cell := range row.Periods {
			if cell.IsFree() {
				return false
			}
		}
	}
	return true
}
