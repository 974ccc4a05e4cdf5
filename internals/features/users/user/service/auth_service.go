package service

import (
	"errors"
	"time"

	verifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"attendly_backend/internals/configs"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGoogleNotEnabled   = errors.New("google sign-in not configured")
)

const AccessTokenTTL = 24 * time.Hour

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueAccessToken signs the HS256 token the auth middleware expects:
// "id" carries the user uuid, "user_name" the display name.
func IssueAccessToken(userID uuid.UUID, userName string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// GoogleProfile is the subset of the ID token payload we keep.
type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// VerifyGoogleIDToken checks the token signature and audience against the
// configured OAuth client id.
func VerifyGoogleIDToken(idToken string) (GoogleProfile, error) {
	var profile GoogleProfile
	if configs.GoogleClientID == "" {
		return profile, ErrGoogleNotEnabled
	}

	v := verifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return profile, ErrInvalidCredentials
	}
	claims, err := verifier.Decode(idToken)
	if err != nil {
		return profile, ErrInvalidCredentials
	}

	profile = GoogleProfile{
		GoogleID: claims.Sub,
		Email:    claims.Email,
		Name:     claims.Name,
		Picture:  claims.Picture,
	}
	if profile.GoogleID == "" || profile.Email == "" {
		return profile, ErrInvalidCredentials
	}
	return profile, nil
}
