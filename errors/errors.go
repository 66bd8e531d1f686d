// Package errors contians http errors and other custom errors
package errors

import (
	errs "errors"
	"fmt"
	"time"

	"github.com/dilshan-mv/coindeck/schemas"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

//revive:disable

var (
	ErrInternalServerError  = fmt.Errorf("internal_server_error")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrBadRequest           = fmt.Errorf("bad_request")
	ErrIncorrectCredentials = fmt.Errorf("incorrect_credentials")
	ErrEmailRequired        = fmt.Errorf("email_required")
	ErrEmailAlreadyUsed     = fmt.Errorf("email_already_used")
	ErrTermsNotAccepted     = fmt.Errorf("terms_not_accepted")
	ErrPasswordRequired     = fmt.Errorf("password_required")
	ErrPasswordsDoNotMatch  = fmt.Errorf("passwords_do_not_match")
	ErrWeakPassword         = fmt.Errorf("weak_password")
	ErrOTPNotValid          = fmt.Errorf("otp_not_valid")
	ErrSessionNotValid      = fmt.Errorf("session_not_valid")
	ErrMarketDataNotLoaded  = fmt.Errorf("market_data_not_loaded")
	Okay                    = "okay"
)

type res schemas.Res

func InternalServerErr(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Status: ErrInternalServerError.Error(),
	})
}

func unauthorized(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res{
		Status: err.Error(),
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return unauthorized(c, ErrUnauthorized)
}

func SessionNotValid(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour * 24)
	c.Cookie(&fiber.Cookie{
		Name:    "session",
		Value:   "",
		Expires: expired,
	})
	return unauthorized(c, ErrSessionNotValid)
}

func IncorrectCredentials(c *fiber.Ctx) error {
	return unauthorized(c, ErrIncorrectCredentials)
}

func badrequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Status: err.Error(),
	})
}

func BadRequest(c *fiber.Ctx) error {
	return badrequest(c, ErrBadRequest)
}

func EmailRequired(c *fiber.Ctx) error {
	return badrequest(c, ErrEmailRequired)
}

func EmailAlreadyUsed(c *fiber.Ctx) error {
	return badrequest(c, ErrEmailAlreadyUsed)
}

func TermsNotAccepted(c *fiber.Ctx) error {
	return badrequest(c, ErrTermsNotAccepted)
}

func PasswordRequired(c *fiber.Ctx) error {
	return badrequest(c, ErrPasswordRequired)
}

func PasswordsDoNotMatch(c *fiber.Ctx) error {
	return badrequest(c, ErrPasswordsDoNotMatch)
}

func WeakPassword(c *fiber.Ctx) error {
	return badrequest(c, ErrWeakPassword)
}

func OTPNotValid(c *fiber.Ctx) error {
	return badrequest(c, ErrOTPNotValid)
}

func MarketDataNotLoaded(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"ok":    false,
		"error": err.Error(),
	})
}

func Done(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Status: Okay,
	})
}

//revive:enable

// CheckDBError is a struc that is used to identify the database errors
type CheckDBError struct{}

// DuplicateKey is a function that is used to find wether the the returned postgres error
// is due to a duplicate key entry (A unique key constraint)
func (CheckDBError) DuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return true
		}
	}

	return false
}
