package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/users/account/model"
)

const accessTTLDefault = 24 * time.Hour

// IssueAccessToken membuat JWT HS256 dengan klaim yang dibaca AuthJWT.
// guardianID nil untuk akun staf.
func IssueAccessToken(u model.UserModel, guardianID *uuid.UUID) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if guardianID != nil {
		claims["guardian_id"] = guardianID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return signed, nil
}

// GoogleEmail memverifikasi ID token Google dan mengembalikan email + nama.
func GoogleEmail(idToken string) (email, name string, err error) {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak bisa dibaca")
	}
	return claims.Email, claims.Name, nil
}
