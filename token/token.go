// Package token is used to create and validate the signed session token
package token

import (
	"fmt"
	"time"

	"github.com/dilshan-mv/coindeck/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Details is a struct that contains the data of a newly created session token
type Details struct {
	Token     string
	SessionID string
	ExpiresIn int64
}

// SessionToken is a struct that is used to perform operations on session tokens.
// The token is an opaque signed wrapper around a session uuid; all flow state
// lives in redis under that uuid, never inside the token itself.
type SessionToken struct {
	Env *config.Env
}

// Create is a function that is used to create a new signed session token
func (s *SessionToken) Create() (tokenDetails *Details, err error) {
	now := time.Now().UTC()

	sessionID, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}

	tokenDetails = &Details{
		SessionID: sessionID.String(),
		ExpiresIn: now.Add(s.Env.SessionExpires).Unix(),
	}

	claims := make(jwt.MapClaims)
	claims["sub"] = tokenDetails.SessionID
	claims["exp"] = tokenDetails.ExpiresIn
	claims["iat"] = now.Unix()
	claims["nbf"] = now.Unix()

	tokenDetails.Token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Env.SessionSecret))
	if err != nil {
		return nil, err
	}

	return tokenDetails, nil
}

// Validate is a function that is used to validate the session token and extract the session uuid
func (s *SessionToken) Validate(token string) (sessionID string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Header["alg"])
		}

		return []byte(s.Env.SessionSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("session token is not valid")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("session token is missing the session uuid")
	}

	if _, err = uuid.Parse(sub); err != nil {
		return "", err
	}

	return sub, nil
}
