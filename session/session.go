// Package session contains the redis backed signup/login flow state
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/schemas"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store is a struct that is used to read and write the per session flow state
type Store struct {
	Conn *connect.Connector
	Env  *config.Env
}

func key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Get is a function that is used to get the flow state of the given session;
// a session that is unknown to redis is an anonymous session
func (s *Store) Get(ctx context.Context, sessionID string) (*schemas.SignupSession, error) {
	val, err := s.Conn.R.Session.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return &schemas.SignupSession{
				State: schemas.SignupStateAnonymous,
			}, nil
		}

		return nil, err
	}

	var state schemas.SignupSession
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Save is a function that is used to persist the flow state of the given session
func (s *Store) Save(ctx context.Context, sessionID string, state *schemas.SignupSession) error {
	val, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.Conn.R.Session.Set(ctx, key(sessionID), string(val), s.Env.SessionExpires).Err()
}

// Destroy is a function that is used to discard the flow state of the given session
func (s *Store) Destroy(ctx context.Context, sessionID string) error {
	return s.Conn.R.Session.Del(ctx, key(sessionID)).Err()
}

// Add is a function that is used to add ther user details to the request scope
func Add(c *fiber.Ctx, user *schemas.User) {
	if user == nil {
		return
	}

	c.Locals("id", user.ID.String())
	c.Locals("username", user.Username)
	c.Locals("email", user.Email)
	c.Locals("verified", user.Verified)
}

// Get the user details from the request scope
func Get(c *fiber.Ctx) (user *schemas.User, err error) {
	id, ok := c.Locals("id").(string)
	if !ok {
		return nil, fmt.Errorf("no authenticated user in the request scope")
	}

	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	verified, _ := c.Locals("verified").(bool)
	return &schemas.User{
		ID:       userID,
		Username: c.Locals("username").(string),
		Email:    c.Locals("email").(string),
		Verified: verified,
	}, nil
}

func parseUserID(id string) (*uuid.UUID, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	return &userID, nil
}

// SaveSessionID save the session uuid in the request scope
func SaveSessionID(c *fiber.Ctx, sessionID string) {
	c.Locals("session_id", sessionID)
}

// GetSessionID get the session uuid from the request scope
func GetSessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals("session_id").(string)
	return sessionID
}
