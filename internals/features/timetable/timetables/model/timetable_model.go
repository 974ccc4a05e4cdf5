package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableModel stores one saved timetable: settings, the subject snapshot
// taken at save time and the completed grid, all as JSONB documents.
type TimetableModel struct {
	TimetableID     uuid.UUID `gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_id"`
	TimetableUserID uuid.UUID `gorm:"column:timetable_user_id;type:uuid;not null;index" json:"timetable_user_id"`

	TimetableSettings datatypes.JSON `gorm:"column:timetable_settings;type:jsonb;not null" json:"timetable_settings"`
	TimetableSubjects datatypes.JSON `gorm:"column:timetable_subjects;type:jsonb;not null" json:"timetable_subjects"`
	TimetableGrid     datatypes.JSON `gorm:"column:timetable_grid;type:jsonb;not null" json:"timetable_grid"`

	TimetableCreatedAt time.Time `gorm:"column:timetable_created_at;not null;autoCreateTime" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time `gorm:"column:timetable_updated_at;not null;autoUpdateTime" json:"timetable_updated_at"`
}

func (TimetableModel) TableName() string { return "timetables" }
