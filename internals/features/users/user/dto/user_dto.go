package dto

import "attendly_backend/internals/features/users/user/model"

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UserResponse struct {
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromModel(u model.UserModel) UserResponse {
	return UserResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		Email:    u.UserEmail,
		PhotoURL: u.UserPhotoURL,
	}
}
