package dto

import (
	"time"

	m "attendly_backend/internals/features/timetable/subjects/model"
)

type CreateSubjectRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type SubjectRegistryResponse struct {
	Subjects  m.SubjectList `json:"subjects"`
	UpdatedAt time.Time     `json:"updated_at"`
}
