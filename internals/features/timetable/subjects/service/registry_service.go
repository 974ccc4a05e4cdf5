package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
)

var (
	ErrEmptySubjectName = errors.New("subject name is empty")
	ErrDuplicateSubject = errors.New("subject already exists")
	ErrProtectedSubject = errors.New("subject is protected")
	ErrUnknownSubject   = errors.New("unknown subject")
)

// SentinelSubject is the non-removable placeholder for non-class time.
const SentinelSubject = "Break"

// MinSubjects must be registered before a timetable may be created.
const MinSubjects = 2

// ColorPalette is cycled by insertion index when the caller picks no color.
// Order matters: existing grids were colored by this exact sequence.
var ColorPalette = []string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#FDCB6E", // yellow
	"#6C5CE7", // purple
	"#A8E6CF", // mint
	"#FF8ED4", // pink
	"#FAD390", // light orange
	"#55E6C1", // seafoam
	"#5F27CD", // deep purple
}

func PaletteColor(index int) string {
	if index < 0 {
		index = 0
	}
	return ColorPalette[index%len(ColorPalette)]
}

// DefaultSubjects seeds a fresh registry.
func DefaultSubjects() subjectModel.SubjectList {
	defaults := []struct{ name, color string }{
		{"Mathematics", "#FF5252"},
		{"Physics", "#448AFF"},
		{"Chemistry", "#66BB6A"},
		{"Biology", "#FFA726"},
		{"English", "#BA68C8"},
		{"Computer Science", "#4DB6AC"},
		{SentinelSubject, "#90A4AE"},
	}
	out := make(subjectModel.SubjectList, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, subjectModel.SubjectItem{
			ID:    uuid.NewString(),
			Name:  d.name,
			Color: d.color,
		})
	}
	return out
}

// Add returns a new list with the subject appended. Duplicate check is
// case-insensitive on the trimmed name. An empty color falls back to the
// palette slot for the current list length.
func Add(list subjectModel.SubjectList, name, color string) (subjectModel.SubjectList, subjectModel.SubjectItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return list, subjectModel.SubjectItem{}, ErrEmptySubjectName
	}
	if _, found := list.FindByName(name); found {
		return list, subjectModel.SubjectItem{}, ErrDuplicateSubject
	}
	if strings.TrimSpace(color) == "" {
		color = PaletteColor(len(list))
	}

	item := subjectModel.SubjectItem{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
	out := make(subjectModel.SubjectList, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, item)
	return out, item, nil
}

// Remove returns a new list without the given subject. The sentinel "Break"
// subject can never be removed.
func Remove(list subjectModel.SubjectList, id string) (subjectModel.SubjectList, subjectModel.SubjectItem, error) {
	target, found := list.FindByID(id)
	if !found {
		return list, subjectModel.SubjectItem{}, ErrUnknownSubject
	}
	if strings.EqualFold(strings.TrimSpace(target.Name), SentinelSubject) {
		return list, subjectModel.SubjectItem{}, ErrProtectedSubject
	}

	out := make(subjectModel.SubjectList, 0, len(list)-1)
	for _, s := range list {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out, target, nil
}
