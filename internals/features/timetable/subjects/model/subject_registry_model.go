package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubjectItem is one entry of the per-user subject set, stored inside the
// registry's JSONB payload. Color is a display hint copied onto grid cells
// at assignment time, not a live reference.
type SubjectItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type SubjectList []SubjectItem

func (l SubjectList) FindByID(id string) (SubjectItem, bool) {
	for _, s := range l {
		if s.ID == id {
			return s, true
		}
	}
	return SubjectItem{}, false
}

// FindByName compares case-insensitively on the trimmed name.
func (l SubjectList) FindByName(name string) (SubjectItem, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range l {
		if strings.ToLower(strings.TrimSpace(s.Name)) == needle {
			return s, true
		}
	}
	return SubjectItem{}, false
}

// SubjectRegistryModel holds the whole subject set of one user as a single
// row. user_id is unique so writes are upserts; at most one logical registry
// per user is enforced here, not left to read order.
type SubjectRegistryModel struct {
	SubjectRegistryID       uuid.UUID      `gorm:"column:subject_registry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_registry_id"`
	SubjectRegistryUserID   uuid.UUID      `gorm:"column:subject_registry_user_id;type:uuid;not null;uniqueIndex:uq_subject_registries_user" json:"subject_registry_user_id"`
	SubjectRegistrySubjects datatypes.JSON `gorm:"column:subject_registry_subjects;type:jsonb;not null" json:"subject_registry_subjects"`

	SubjectRegistryCreatedAt time.Time `gorm:"column:subject_registry_created_at;not null;autoCreateTime" json:"subject_registry_created_at"`
	SubjectRegistryUpdatedAt time.Time `gorm:"column:subject_registry_updated_at;not null;autoUpdateTime" json:"subject_registry_updated_at"`
}

func (SubjectRegistryModel) TableName() string { return "subject_registries" }
