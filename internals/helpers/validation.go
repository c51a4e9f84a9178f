package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator instance dipakai bersama semua controller.
var Validate = validator.New()

// ValidationErrorMap mengubah validator.ValidationErrors menjadi
// map field → pesan, untuk JsonValidationError (422).
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fe.Param() + "."
		case "max":
			msg = field + " maksimal " + fe.Param() + "."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		case "gt":
			msg = field + " harus lebih besar dari " + fe.Param() + "."
		case "gte":
			msg = field + " minimal " + fe.Param() + "."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// ValidateStruct: shortcut validasi DTO → 422 siap kirim.
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := Validate.Struct(s); err != nil {
		return JsonValidationError(c, ValidationErrorMap(err))
	}
	return nil
}
