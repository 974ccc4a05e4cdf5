package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "attendly_backend/internals/features/users/user/dto"
	userModel "attendly_backend/internals/features/users/user/model"
	authService "attendly_backend/internals/features/users/user/service"
	helper "attendly_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

// REGISTER
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: hash,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	return h.respondWithToken(c, user, helper.JsonCreated, "Registered")
}

// LOGIN
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := h.DB.WithContext(c.UserContext()).
		Where("user_email = ?", req.Email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}
	if authService.CheckPassword(user.UserPassword, req.Password) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return h.respondWithToken(c, user, helper.JsonOK, "Logged in")
}

// LOGIN GOOGLE
// POST /api/auth/google
// Verifies the Google ID token, then finds or creates the matching account.
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req userDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	profile, err := authService.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		if errors.Is(err, authService.ErrGoogleNotEnabled) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Google sign-in not available")
		}
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	var user userModel.UserModel
	err = h.DB.WithContext(c.UserContext()).
		Where("user_google_id = ?", profile.GoogleID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// link an existing email account before minting a new one
		err = h.DB.WithContext(c.UserContext()).
			Where("user_email = ?", strings.ToLower(profile.Email)).
			First(&user).Error
		if err == nil {
			if uErr := h.DB.WithContext(c.UserContext()).
				Model(&user).
				Update("user_google_id", profile.GoogleID).Error; uErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in with Google")
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			var photo *string
			if profile.Picture != "" {
				photo = &profile.Picture
			}
			dummy, hErr := authService.HashPassword(uuid.NewString())
			if hErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in with Google")
			}
			user = userModel.UserModel{
				UserName:     profile.Name,
				UserEmail:    strings.ToLower(profile.Email),
				UserPassword: dummy,
				UserGoogleID: &profile.GoogleID,
				UserPhotoURL: photo,
			}
			if cErr := h.DB.WithContext(c.UserContext()).Create(&user).Error; cErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in with Google")
			}
		}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in with Google")
	}

	return h.respondWithToken(c, user, helper.JsonOK, "Logged in with Google")
}

// ME
// GET /api/u/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	err = h.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.JsonOK(c, "Profile found", userDTO.FromModel(user))
}

// LOGOUT
// POST /api/u/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

/* =========================================================
   Internals
   ========================================================= */

func (h *AuthController) respondWithToken(c *fiber.Ctx, user userModel.UserModel, render func(*fiber.Ctx, string, any) error, message string) error {
	token, err := authService.IssueAccessToken(user.UserID, user.UserName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(authService.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return render(c, message, userDTO.AuthResponse{
		AccessToken: token,
		User:        userDTO.FromModel(user),
	})
}
