// Package services contains the database backed services
package services

import (
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User contains all the user related services
type User struct {
	Conn *connect.Connector
}

// IsEmailAvailable is a function that is used to find out wether the email address is taken or not
func (u *User) IsEmailAvailable(email string) (
	userID *uuid.UUID,
	isEmailAvailable,
	isEmailVerified bool,
	err error,
) {
	var user models.User
	err = u.Conn.DB.Select("id", "email", "verified").Where(&models.User{
		Email: email,
	}).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, true, false, nil
		}

		return nil, false, false, err
	}

	return user.ID, false, user.Verified, nil
}

// Create is a function that is used to create a new user in the relational database
func (u *User) Create(user models.User) (
	newUser models.User,
	err error,
) {
	newUser = user
	if newUser.ID == nil {
		id := uuid.New()
		newUser.ID = &id
	}

	err = u.Conn.DB.Create(&newUser).Error
	if err != nil {
		return models.User{}, err
	}

	return newUser, nil
}

// GetUserWithEmail is a function that is used to get the user with the given email address
func (u *User) GetUserWithEmail(email string) (user *models.User, err error) {
	var userD models.User
	err = u.Conn.DB.Where(&models.User{
		Email: email,
	}).First(&userD).Error
	if err != nil {
		return nil, err
	}

	return &userD, nil
}

// GetUserWithID is a function that is used to get the user with the given user ID
func (u *User) GetUserWithID(userID uuid.UUID) (user *models.User, err error) {
	var userD models.User
	err = u.Conn.DB.Where(&models.User{
		ID: &userID,
	}).First(&userD).Error
	if err != nil {
		return nil, err
	}

	return &userD, nil
}

// MarkVerified is a function that is used to mark the user email address as verified
func (u *User) MarkVerified(userID uuid.UUID) error {
	return u.Conn.DB.Model(&models.User{}).Where(&models.User{
		ID: &userID,
	}).Update("verified", true).Error
}

// DeleteUser is a function that is used to delete the given user
func (u *User) DeleteUser(user models.User) error {
	return u.Conn.DB.Where(&models.User{
		ID: user.ID,
	}).Delete(&models.User{}).Error
}
