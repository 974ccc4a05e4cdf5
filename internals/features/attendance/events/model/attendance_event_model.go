package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses. Proxy counts toward presence in every percentage.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusProxy   = "proxy"
)

func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusProxy
}

// AttendanceEventModel is one mark for one subject on one calendar day.
// The (user, subject, day) unique index makes marking idempotent per day:
// re-marking the same subject on the same day overwrites the earlier status.
type AttendanceEventModel struct {
	AttendanceEventID     uuid.UUID `gorm:"column:attendance_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_event_id"`
	AttendanceEventUserID uuid.UUID `gorm:"column:attendance_event_user_id;type:uuid;not null;uniqueIndex:uq_attendance_events_day,priority:1;index" json:"attendance_event_user_id"`

	AttendanceEventSubjectID   string `gorm:"column:attendance_event_subject_id;type:varchar(64);not null;uniqueIndex:uq_attendance_events_day,priority:2" json:"attendance_event_subject_id"`
	AttendanceEventSubjectName string `gorm:"column:attendance_event_subject_name;type:varchar(120);not null" json:"attendance_event_subject_name"`

	AttendanceEventStatus   string    `gorm:"column:attendance_event_status;type:varchar(10);not null" json:"attendance_event_status"`
	AttendanceEventMarkedOn time.Time `gorm:"column:attendance_event_marked_on;type:date;not null;uniqueIndex:uq_attendance_events_day,priority:3" json:"attendance_event_marked_on"`
	AttendanceEventMarkedAt time.Time `gorm:"column:attendance_event_marked_at;not null" json:"attendance_event_marked_at"`

	AttendanceEventNote        *string    `gorm:"column:attendance_event_note;type:varchar(255)" json:"attendance_event_note,omitempty"`
	AttendanceEventTimetableID *uuid.UUID `gorm:"column:attendance_event_timetable_id;type:uuid" json:"attendance_event_timetable_id,omitempty"`

	AttendanceEventCreatedAt time.Time `gorm:"column:attendance_event_created_at;not null;autoCreateTime" json:"attendance_event_created_at"`
	AttendanceEventUpdatedAt time.Time `gorm:"column:attendance_event_updated_at;not null;autoUpdateTime" json:"attendance_event_updated_at"`
}

func (AttendanceEventModel) TableName() string { return "attendance_events" }
