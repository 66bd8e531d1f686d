package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP is a one time password issued to a user during signup, stored as a
// one way hash. Rows are never deleted, they are marked used or left to expire.
type OTP struct {
	ID        *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	UserID    *uuid.UUID `gorm:"type:uuid;not null;index:idx_otps_user_expiry"`
	OTPHash   string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null;default:now()"`
	ExpiresAt time.Time  `gorm:"not null;index:idx_otps_user_expiry"`
	Used      bool       `gorm:"default:false"`
}
