package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"attendly_backend/internals/helpers/dbtime"
)

// ClassModel is a quick-add class slot outside the full timetable flow:
// a subject held on a set of weekdays between two times. Days are weekday
// numbers, Monday=1 through Saturday=6.
type ClassModel struct {
	ClassID     uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassUserID uuid.UUID `gorm:"column:class_user_id;type:uuid;not null;index" json:"class_user_id"`

	ClassSubject string        `gorm:"column:class_subject;type:varchar(120);not null" json:"class_subject"`
	ClassRoom    *string       `gorm:"column:class_room;type:varchar(60)" json:"class_room,omitempty"`
	ClassDays    pq.Int64Array `gorm:"column:class_days;type:int[];not null" json:"class_days"`

	ClassStartTime dbtime.Tod `gorm:"column:class_start_time;type:time;not null" json:"class_start_time"`
	ClassEndTime   dbtime.Tod `gorm:"column:class_end_time;type:time;not null" json:"class_end_time"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
