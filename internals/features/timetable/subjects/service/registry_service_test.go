package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
)

func TestAdd_AssignsPaletteColorWhenEmpty(t *testing.T) {
	var list subjectModel.SubjectList

	list, first, err := Add(list, "Math", "")
	require.NoError(t, err)
	assert.Equal(t, ColorPalette[0], first.Color)
	assert.NotEmpty(t, first.ID)

	list, second, err := Add(list, "Physics", "")
	require.NoError(t, err)
	assert.Equal(t, ColorPalette[1], second.Color)
	assert.Len(t, list, 2)
}

func TestAdd_PaletteWrapsAround(t *testing.T) {
	var list subjectModel.SubjectList
	var err error
	for i := 0; i < len(ColorPalette); i++ {
		list, _, err = Add(list, "Subject"+string(rune('A'+i)), "")
		require.NoError(t, err)
	}
	list, wrapped, err := Add(list, "Eleventh", "")
	require.NoError(t, err)
	assert.Equal(t, ColorPalette[0], wrapped.Color)
	assert.Len(t, list, len(ColorPalette)+1)
}

func TestAdd_KeepsExplicitColor(t *testing.T) {
	_, item, err := Add(nil, "Chemistry", "#123456")
	require.NoError(t, err)
	assert.Equal(t, "#123456", item.Color)
}

func TestAdd_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	list, _, err := Add(nil, "Math", "")
	require.NoError(t, err)

	_, _, err = Add(list, "math", "")
	assert.ErrorIs(t, err, ErrDuplicateSubject)

	_, _, err = Add(list, "  MATH  ", "")
	assert.ErrorIs(t, err, ErrDuplicateSubject)
}

func TestAdd_RejectsEmptyName(t *testing.T) {
	_, _, err := Add(nil, "   ", "")
	assert.ErrorIs(t, err, ErrEmptySubjectName)
}

func TestRemove_ShrinksListByOne(t *testing.T) {
	list, math, err := Add(nil, "Math", "")
	require.NoError(t, err)
	list, _, err = Add(list, "Physics", "")
	require.NoError(t, err)

	list, removed, err := Remove(list, math.ID)
	require.NoError(t, err)
	assert.Equal(t, math.ID, removed.ID)
	assert.Len(t, list, 1)
	_, found := list.FindByName("Math")
	assert.False(t, found)
}

func TestRemove_ProtectsSentinel(t *testing.T) {
	defaults := DefaultSubjects()
	brk, found := defaults.FindByName(SentinelSubject)
	require.True(t, found)

	_, _, err := Remove(defaults, brk.ID)
	assert.ErrorIs(t, err, ErrProtectedSubject)
}

func TestRemove_UnknownID(t *testing.T) {
	list, _, err := Add(nil, "Math", "")
	require.NoError(t, err)

	_, _, err = Remove(list, "nope")
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestDefaultSubjects_ContainsSentinel(t *testing.T) {
	defaults := DefaultSubjects()
	assert.Len(t, defaults, 7)
	_, found := defaults.FindByName("break")
	assert.True(t, found, "sentinel lookup is case-insensitive")
}
