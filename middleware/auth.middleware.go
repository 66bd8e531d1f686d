package middleware

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/errors"
	"github.com/dilshan-mv/coindeck/schemas"
	"github.com/dilshan-mv/coindeck/services"
	"github.com/dilshan-mv/coindeck/session"
	"github.com/dilshan-mv/coindeck/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth contains auth related middlewares
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Check is a function that is used to check wether the user is authenticated
func (a *Auth) Check(c *fiber.Ctx) error {
	cookie := c.Cookies("session")
	if cookie == "" {
		return errors.Unauthorized(c)
	}

	sessionTokenS := token.SessionToken{Env: a.Env}
	sessionID, err := sessionTokenS.Validate(cookie)
	if err != nil {
		return errors.SessionNotValid(c)
	}

	store := session.Store{
		Conn: a.Conn,
		Env:  a.Env,
	}

	state, err := store.Get(c.Context(), sessionID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	if state.State != schemas.SignupStateAuthenticated || state.UserID == "" {
		return errors.Unauthorized(c)
	}

	userID, err := uuid.Parse(state.UserID)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	user, err := userS.GetUserWithID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := store.Destroy(c.Context(), sessionID); err != nil {
				logger.Error(err)
			}
			return errors.SessionNotValid(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	filtered := schemas.FilterUser(*user)
	session.Add(c, &filtered)
	session.SaveSessionID(c, sessionID)

	return c.Next()
}
