package schemas

import (
	"github.com/dilshan-mv/coindeck/models"
	"github.com/google/uuid"
)

// User is schema that contians user freindly user details
type User struct {
	ID       *uuid.UUID `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Verified bool       `json:"verified"`
}

// FilterUser is a function that is used to filter the user model to a user freindly format
func FilterUser(user models.User) User {
	return User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Verified: user.Verified,
	}
}
