package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/errors"
	"github.com/dilshan-mv/coindeck/session"
	"github.com/gofiber/fiber/v2"
)

// User is a struct that contains user controllers
type User struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Dashboard is a function that serves the dashboard payload of the authenticated user
func (u *User) Dashboard(c *fiber.Ctx) error {
	user, err := session.Get(c)
	if err != nil {
		logger.Error(err)
		return errors.Unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": errors.Okay,
		"user":   user,
	})
}
