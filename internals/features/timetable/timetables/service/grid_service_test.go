package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
)

var testSubjects = subjectModel.SubjectList{
	{ID: "s-math", Name: "Math", Color: "#FF6B6B"},
	{ID: "s-phy", Name: "Physics", Color: "#4ECDC4"},
}

func TestGenerateGrid_Dimensions(t *testing.T) {
	for days := 1; days <= 6; days++ {
		for periods := 1; periods <= 10; periods++ {
			grid, err := GenerateGrid(days, periods)
			require.NoError(t, err)
			require.Len(t, grid, days)
			for _, row := range grid {
				assert.Len(t, row.Periods, periods)
				for _, cell := range row.Periods {
					assert.True(t, cell.IsFree())
				}
			}
		}
	}
}

func TestGenerateGrid_DayLabelsFixedOrder(t *testing.T) {
	grid, err := GenerateGrid(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "Monday", grid[0].Day)
	assert.Equal(t, "Tuesday", grid[1].Day)
	assert.Equal(t, "Wednesday", grid[2].Day)
}

func TestGenerateGrid_Deterministic(t *testing.T) {
	a, err := GenerateGrid(5, 6)
	require.NoError(t, err)
	b, err := GenerateGrid(5, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateGrid_RejectsOutOfRangeConfig(t *testing.T) {
	cases := [][2]int{{0, 5}, {7, 5}, {3, 0}, {3, 11}, {-1, 4}}
	for _, tc := range cases {
		_, err := GenerateGrid(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestSetCell_BindsSubjectAndCopiesColor(t *testing.T) {
	grid, err := GenerateGrid(2, 2)
	require.NoError(t, err)

	id := "s-math"
	out, err := SetCell(grid, 1, 0, testSubjects, &id)
	require.NoError(t, err)

	cell := out[1].Periods[0]
	require.NotNil(t, cell.SubjectID)
	assert.Equal(t, "s-math", *cell.SubjectID)
	assert.Equal(t, "Math", *cell.Subject)
	assert.Equal(t, "#FF6B6B", *cell.Color)

	// original grid untouched
	assert.True(t, grid[1].Periods[0].IsFree())
}

func TestSetCell_ColorIsSnapshotNotReference(t *testing.T) {
	grid, err := GenerateGrid(1, 1)
	require.NoError(t, err)

	subjects := subjectModel.SubjectList{{ID: "s1", Name: "Art", Color: "#111111"}}
	id := "s1"
	out, err := SetCell(grid, 0, 0, subjects, &id)
	require.NoError(t, err)

	subjects[0].Color = "#999999"
	assert.Equal(t, "#111111", *out[0].Periods[0].Color)
}

func TestSetCell_ClearsCell(t *testing.T) {
	grid, err := GenerateGrid(1, 1)
	require.NoError(t, err)

	id := "s-phy"
	out, err := SetCell(grid, 0, 0, testSubjects, &id)
	require.NoError(t, err)
	require.False(t, out[0].Periods[0].IsFree())

	cleared, err := SetCell(out, 0, 0, testSubjects, nil)
	require.NoError(t, err)
	assert.True(t, cleared[0].Periods[0].IsFree())
}

func TestSetCell_OutOfRangeLeavesGridUnchanged(t *testing.T) {
	grid, err := GenerateGrid(2, 2)
	require.NoError(t, err)

	id := "s-math"
	for _, coord := range [][2]int{{2, 0}, {-1, 0}, {0, 2}, {0, -1}} {
		_, err := SetCell(grid, coord[0], coord[1], testSubjects, &id)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	for _, row := range grid {
		for _, cell := range row.Periods {
			assert.True(t, cell.IsFree())
		}
	}
}

func TestSetCell_UnknownSubject(t *testing.T) {
	grid, err := GenerateGrid(1, 1)
	require.NoError(t, err)

	id := "missing"
	_, err = SetCell(grid, 0, 0, testSubjects, &id)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestIsComplete(t *testing.T) {
	grid, err := GenerateGrid(2, 2)
	require.NoError(t, err)
	assert.False(t, IsComplete(grid))

	mathID, phyID := "s-math", "s-phy"
	grid, err = SetCell(grid, 0, 0, testSubjects, &mathID)
	require.NoError(t, err)
	grid, err = SetCell(grid, 0, 1, testSubjects, &phyID)
	require.NoError(t, err)
	grid, err = SetCell(grid, 1, 0, testSubjects, &mathID)
	require.NoError(t, err)
	assert.False(t, IsComplete(grid), "one free cell keeps the grid incomplete")

	grid, err = SetCell(grid, 1, 1, testSubjects, &phyID)
	require.NoError(t, err)
	assert.True(t, IsComplete(grid))
}

func TestIsComplete_EmptyGrid(t *testing.T) {
	assert.False(t, IsComplete(nil))
}
