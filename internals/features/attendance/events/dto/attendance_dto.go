package dto

import (
	"time"

	"attendly_backend/internals/features/attendance/events/model"
	"attendly_backend/internals/features/attendance/events/service"
)

type MarkAttendanceRequest struct {
	SubjectID   string  `json:"subject_id" validate:"required,min=1,max=64"`
	SubjectName string  `json:"subject_name" validate:"required,min=1,max=120"`
	Status      string  `json:"status" validate:"required,oneof=present absent proxy"`
	MarkedOn    *string `json:"marked_on" validate:"omitempty,datetime=2006-01-02"` // defaults to today
	Note        *string `json:"note" validate:"omitempty,max=255"`
	TimetableID *string `json:"timetable_id" validate:"omitempty,uuid"`
}

type AttendanceEventResponse struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Status      string    `json:"status"`
	MarkedOn    string    `json:"marked_on"`
	MarkedAt    time.Time `json:"marked_at"`
	Note        *string   `json:"note,omitempty"`
}

func FromModel(m model.AttendanceEventModel) AttendanceEventResponse {
	return AttendanceEventResponse{
		ID:          m.AttendanceEventID.String(),
		SubjectID:   m.AttendanceEventSubjectID,
		SubjectName: m.AttendanceEventSubjectName,
		Status:      m.AttendanceEventStatus,
		MarkedOn:    m.AttendanceEventMarkedOn.Format("2006-01-02"),
		MarkedAt:    m.AttendanceEventMarkedAt,
		Note:        m.AttendanceEventNote,
	}
}

type SummaryResponse struct {
	OverallPercentage int                  `json:"overall_percentage"`
	Distribution      service.Distribution `json:"distribution"`
	TotalEvents       int                  `json:"total_events"`
}

// ReportResponse flags subjects sitting under the shortage threshold.
type ReportResponse struct {
	Threshold         int                     `json:"threshold"`
	OverallPercentage int                     `json:"overall_percentage"`
	Distribution      service.Distribution    `json:"distribution"`
	Subjects          []service.SubjectReport `json:"subjects"`
	BelowThreshold    []string                `json:"below_threshold"`
}
