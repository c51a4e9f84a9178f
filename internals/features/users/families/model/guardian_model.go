package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardianModel: profil wali murid, terhubung satu-satu ke users.
type GuardianModel struct {
	GuardianID     uuid.UUID `gorm:"column:guardian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guardian_id"`
	GuardianUserID uuid.UUID `gorm:"column:guardian_user_id;type:uuid;not null;uniqueIndex" json:"guardian_user_id"`

	GuardianFullName string  `gorm:"column:guardian_full_name;size:120;not null" json:"guardian_full_name"`
	GuardianPhone    *string `gorm:"column:guardian_phone;size:30" json:"guardian_phone,omitempty"`
	GuardianAddress  *string `gorm:"column:guardian_address;size:255" json:"guardian_address,omitempty"`

	GuardianCreatedAt time.Time      `gorm:"column:guardian_created_at;autoCreateTime" json:"guardian_created_at"`
	GuardianUpdatedAt time.Time      `gorm:"column:guardian_updated_at;autoUpdateTime" json:"guardian_updated_at"`
	GuardianDeletedAt gorm.DeletedAt `gorm:"column:guardian_deleted_at;index" json:"guardian_deleted_at,omitempty"`
}

func (GuardianModel) TableName() string { return "guardians" }
