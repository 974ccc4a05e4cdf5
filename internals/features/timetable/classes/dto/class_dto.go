package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"attendly_backend/internals/features/timetable/classes/model"
	"attendly_backend/internals/helpers/dbtime"
)

type CreateClassRequest struct {
	Subject   string  `json:"subject" validate:"required,min=1,max=120"`
	Room      *string `json:"room" validate:"omitempty,max=60"`
	Days      []int64 `json:"days" validate:"required,min=1,max=6,dive,min=1,max=6"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string  `json:"end_time" validate:"required,datetime=15:04"`
}

// ToModel normalizes: subject uppercased, days deduplicated and sorted.
func (r CreateClassRequest) ToModel(userID uuid.UUID) (model.ClassModel, error) {
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return model.ClassModel{}, err
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return model.ClassModel{}, err
	}

	seen := map[int64]bool{}
	days := make(pq.Int64Array, 0, len(r.Days))
	for d := int64(1); d <= 6; d++ {
		for _, rd := range r.Days {
			if rd == d && !seen[d] {
				seen[d] = true
				days = append(days, d)
			}
		}
	}

	return model.ClassModel{
		ClassUserID:    userID,
		ClassSubject:   strings.ToUpper(strings.TrimSpace(r.Subject)),
		ClassRoom:      r.Room,
		ClassDays:      days,
		ClassStartTime: start,
		ClassEndTime:   end,
	}, nil
}

type ClassResponse struct {
	ClassID   string     `json:"class_id"`
	Subject   string     `json:"subject"`
	Room      *string    `json:"room,omitempty"`
	Days      []int64    `json:"days"`
	StartTime dbtime.Tod `json:"start_time"`
	EndTime   dbtime.Tod `json:"end_time"`
}

func FromModel(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:   m.ClassID.String(),
		Subject:   m.ClassSubject,
		Room:      m.ClassRoom,
		Days:      m.ClassDays,
		StartTime: m.ClassStartTime,
		EndTime:   m.ClassEndTime,
	}
}
