package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(60);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(120)" json:"-"`

	UserGoogleID *string `gorm:"column:user_google_id;type:varchar(64);uniqueIndex:uq_users_google_id" json:"-"`
	UserPhotoURL *string `gorm:"column:user_photo_url;type:varchar(255)" json:"user_photo_url,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
