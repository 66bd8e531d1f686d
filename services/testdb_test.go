package services

import (
	"testing"
	"time"

	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the user and otp tables
func setupTestDB(t *testing.T) *connect.Connector {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	statements := []string{
		`CREATE TABLE users (
			id text PRIMARY KEY,
			created_at datetime,
			updated_at datetime,
			email text UNIQUE NOT NULL,
			username text UNIQUE,
			password text NOT NULL,
			verified boolean DEFAULT false
		)`,
		`CREATE TABLE otps (
			id text PRIMARY KEY,
			user_id text NOT NULL,
			otp_hash text NOT NULL,
			created_at datetime NOT NULL,
			expires_at datetime NOT NULL,
			used boolean DEFAULT false
		)`,
		`CREATE INDEX idx_otps_user_expiry ON otps (user_id, expires_at)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return &connect.Connector{DB: db}
}

// seedUser inserts a user with a bcrypt hashed password and returns the row
func seedUser(t *testing.T, conn *connect.Connector, email, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash the password: %v", err)
	}

	id := uuid.New()
	now := time.Now().UTC()
	user := models.User{
		ID:        &id,
		CreatedAt: &now,
		UpdatedAt: &now,
		Email:     email,
		Username:  email,
		Password:  string(hash),
	}
	if err := conn.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed the user: %v", err)
	}

	return user
}
