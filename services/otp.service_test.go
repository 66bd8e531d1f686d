package services

import (
	"testing"
	"time"

	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueReturnsSixDigitCodes(t *testing.T) {
	conn := setupTestDB(t)
	user := seedUser(t, conn, "issue@example.com", "correct horse battery staple")

	otpS := OTP{Conn: conn}

	for i := 0; i < 5; i++ {
		code, err := otpS.Issue(&user)
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}

	var count int64
	require.NoError(t, conn.DB.Model(&models.OTP{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 5, count, "every issue must create exactly one row")
}

func TestVerifySucceedsExactlyOnce(t *testing.T) {
	conn := setupTestDB(t)
	user := seedUser(t, conn, "once@example.com", "correct horse battery staple")

	otpS := OTP{Conn: conn}

	code, err := otpS.Issue(&user)
	require.NoError(t, err)

	ok, err := otpS.Verify(&user, code)
	require.NoError(t, err)
	assert.True(t, ok, "the exact code must verify before expiry")

	ok, err = otpS.Verify(&user, code)
	require.NoError(t, err)
	assert.False(t, ok, "a used code must never verify again")
}

func TestVerifyRejectsExpiredCode(t *testing.T) {
	conn := setupTestDB(t)
	user := seedUser(t, conn, "expired@example.com", "correct horse battery staple")

	otpS := OTP{Conn: conn}

	code, err := otpS.Issue(&user)
	require.NoError(t, err)

	err = conn.DB.Model(&models.OTP{}).
		Where("user_id = ?", user.ID).
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error
	require.NoError(t, err)

	ok, err := otpS.Verify(&user, code)
	require.NoError(t, err)
	assert.False(t, ok, "a correct code must fail after its expiry")
}

func TestVerifyRejectsMalformedInputWithoutStorage(t *testing.T) {
	// a nil database proves the format gate fires before any lookup,
	// a storage hit would panic here
	otpS := OTP{Conn: &connect.Connector{}}
	user := models.User{}

	for _, code := range []string{"", "12345", "1234567", "12a456", "12345 ", "١٢٣٤٥٦"} {
		ok, err := otpS.Verify(&user, code)
		require.NoError(t, err)
		assert.False(t, ok, "malformed code %q must be rejected", code)
	}
}

func TestVerifyChecksOnlyTheNewestCodeAfterResend(t *testing.T) {
	conn := setupTestDB(t)
	user := seedUser(t, conn, "resend@example.com", "correct horse battery staple")

	otpS := OTP{Conn: conn}

	oldCode, err := otpS.Issue(&user)
	require.NoError(t, err)

	// both rows stay unexpired, only creation order separates them
	time.Sleep(10 * time.Millisecond)

	newCode, err := otpS.Issue(&user)
	require.NoError(t, err)

	if oldCode != newCode {
		ok, err := otpS.Verify(&user, oldCode)
		require.NoError(t, err)
		assert.False(t, ok, "an older still valid code must never match once a newer one exists")
	}

	ok, err := otpS.Verify(&user, newCode)
	require.NoError(t, err)
	assert.True(t, ok, "the newest code must verify even when an older one is unexpired")
}

func TestVerifyFailureDoesNotConsumeTheCode(t *testing.T) {
	conn := setupTestDB(t)
	user := seedUser(t, conn, "retry@example.com", "correct horse battery staple")

	otpS := OTP{Conn: conn}

	code, err := otpS.Issue(&user)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	ok, err := otpS.Verify(&user, wrong)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = otpS.Verify(&user, code)
	require.NoError(t, err)
	assert.True(t, ok, "a failed attempt must not mutate the stored code")
}
