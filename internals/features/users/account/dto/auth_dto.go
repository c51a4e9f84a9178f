package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/users/account/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	// Data kontak guardian (profil dibuat sekalian saat register)
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserEmail  string     `json:"user_email"`
	UserRole   string     `json:"user_role"`
	GuardianID *uuid.UUID `json:"guardian_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToUserResponse(u model.UserModel, guardianID *uuid.UUID) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		UserName:   u.UserName,
		UserEmail:  u.UserEmail,
		UserRole:   u.UserRole,
		GuardianID: guardianID,
		CreatedAt:  u.UserCreatedAt,
	}
}
