package model

// Cell binds one period slot to a subject. A cell with no subject is free.
// Name and color are copied from the subject at assignment time; renaming a
// subject later does not rewrite cells already placed (denormalized on
// purpose, to preserve historical display).
type Cell struct {
	SubjectID *string `json:"subject_id"`
	Subject   *string `json:"subject"`
	Color     *string `json:"color"`
}

func (c Cell) IsFree() bool { return c.SubjectID == nil }

// DayRow is one working day of the grid. All rows carry the same period count.
type DayRow struct {
	Day     string `json:"day"`
	Periods []Cell `json:"periods"`
}

type Grid []DayRow

// Clone deep-copies the grid so edits never alias the original rows.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		periods := make([]Cell, len(row.Periods))
		copy(periods, row.Periods)
		out[i] = DayRow{Day: row.Day, Periods: periods}
	}
	return out
}
