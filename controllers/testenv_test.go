package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/middleware"
	"github.com/dilshan-mv/coindeck/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires the auth surface onto an in-memory database and redis,
// mirroring the route table of cmd/main.go without the limiters
func setupApp(t *testing.T) (*fiber.App, *connect.Connector, *config.Env) {
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
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
	})

	env := &config.Env{
		SessionSecret:    "test-session-secret",
		SessionExpires:   24 * time.Hour,
		SessionMaxAge:    1440,
		FrontendHostname: "localhost",
		DevEnv:           string(config.Test),
	}
	conn := &connect.Connector{
		DB: db,
		R: &connect.Redis{
			Session: client,
		},
	}

	authC := Auth{
		Conn: conn,
		Env:  env,
	}
	userC := User{
		Conn: conn,
		Env:  env,
	}
	authM := middleware.Auth{
		Conn: conn,
		Env:  env,
	}

	app := fiber.New()
	app.Post("/login/", authC.LoginWEmailAndPassword)
	app.Post("/logout/", authC.Logout)
	app.Post("/signup/", authC.StartSignup)
	app.Post("/signup/password/", authC.SetPassword)
	app.Post("/signup/verify-otp/", authC.VerifyOTP)
	app.Get("/signup/resend-otp/", authC.ResendOTP)
	app.Post("/signup/resend-otp/", authC.ResendOTP)
	app.Get("/welcome/", authC.Welcome)
	app.Get("/dashboard/", authM.Check, userC.Dashboard)

	return app, conn, env
}

func seedUser(t *testing.T, conn *connect.Connector, email, password string, verified bool) models.User {
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
		Verified:  verified,
	}
	if err := conn.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed the user: %v", err)
	}

	return user
}

func request(t *testing.T, app *fiber.App, method, path, body, sessionCookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		req.Header.Set("Cookie", "session="+sessionCookie)
	}

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	return res
}

func responseBody(t *testing.T, res *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read the response body: %v", err)
	}
	res.Body.Close()

	return string(body)
}

func sessionCookie(res *http.Response) string {
	for _, cookie := range res.Cookies() {
		if cookie.Name == "session" {
			return cookie.Value
		}
	}

	return ""
}
