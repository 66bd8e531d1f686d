package services

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// OTPLength is the number of digits in a one time password
	OTPLength = 6
	// OTPExpiration is the lifetime of a one time password
	OTPExpiration = 5 * time.Minute
)

var otpRegex = regexp.MustCompile(`^[0-9]{6}$`)

// OTP contains all the one time password related services
type OTP struct {
	Conn *connect.Connector
}

// Issue is a function that is used to create a new one time password for the user;
// the code is stored as a bcrypt hash and the plaintext is returned for delivery.
// Previously issued codes are left untouched and stay valid until they expire.
func (o *OTP) Issue(user *models.User) (code string, err error) {
	code, err = generateCode()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	otpID := uuid.New()
	err = o.Conn.DB.Create(&models.OTP{
		ID:        &otpID,
		UserID:    user.ID,
		OTPHash:   string(hash),
		CreatedAt: now,
		ExpiresAt: now.Add(OTPExpiration),
	}).Error
	if err != nil {
		return "", err
	}

	return code, nil
}

// Verify is a function that is used to verify the submitted code against the
// newest unused and unexpired one time password of the user. Codes that are not
// exactly six digits are rejected before the database is consulted. An older
// code that is still unexpired is never matched once a newer one exists.
func (o *OTP) Verify(user *models.User, code string) (ok bool, err error) {
	if !otpRegex.MatchString(code) {
		return false, nil
	}

	var otp models.OTP
	err = o.Conn.DB.
		Where("user_id = ? AND used = ? AND expires_at > ?", user.ID, false, time.Now().UTC()).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}

		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(otp.OTPHash), []byte(code))
	if err != nil {
		return false, nil
	}

	err = o.Conn.DB.Model(&otp).Update("used", true).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

func generateCode() (string, error) {
	var code strings.Builder
	for i := 0; i < OTPLength; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code.WriteString(digit.String())
	}

	return code.String(), nil
}
