package controllers

import (
	"strings"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/errors"
	"github.com/dilshan-mv/coindeck/models"
	"github.com/dilshan-mv/coindeck/schemas"
	"github.com/dilshan-mv/coindeck/services"
	"github.com/dilshan-mv/coindeck/session"
	"github.com/dilshan-mv/coindeck/token"
	"github.com/dilshan-mv/coindeck/utils"
	"github.com/dilshan-mv/coindeck/validate"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Auth struct contains all the auth related controllers
type Auth struct {
	Conn *connect.Connector
	Env  *config.Env
}

func (a *Auth) sessionStore() *session.Store {
	return &session.Store{
		Conn: a.Conn,
		Env:  a.Env,
	}
}

// loadSession resolves the session cookie into a session uuid and its flow
// state; a missing or unverifiable cookie is treated as an anonymous session
func (a *Auth) loadSession(c *fiber.Ctx) (sessionID string, state *schemas.SignupSession) {
	anonymous := &schemas.SignupSession{
		State: schemas.SignupStateAnonymous,
	}

	cookie := c.Cookies("session")
	if cookie == "" {
		return "", anonymous
	}

	sessionTokenS := token.SessionToken{Env: a.Env}
	sessionID, err := sessionTokenS.Validate(cookie)
	if err != nil {
		return "", anonymous
	}

	state, err = a.sessionStore().Get(c.Context(), sessionID)
	if err != nil {
		logger.Error(err)
		return sessionID, anonymous
	}

	return sessionID, state
}

// newSession issues a fresh session uuid and sets the signed session cookie
func (a *Auth) newSession(c *fiber.Ctx) (sessionID string, err error) {
	sessionTokenS := token.SessionToken{Env: a.Env}
	tokenD, err := sessionTokenS.Create()
	if err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    tokenD.Token,
		Path:     "/",
		MaxAge:   a.Env.SessionMaxAge * 60,
		Secure:   false,
		HTTPOnly: true,
		Domain:   a.Env.FrontendHostname,
	})

	return tokenD.SessionID, nil
}

// restart discards a wizard session whose referenced user no longer exists
// and sends the caller back to the start of the flow
func (a *Auth) restart(c *fiber.Ctx, sessionID string) error {
	if sessionID != "" {
		if err := a.sessionStore().Destroy(c.Context(), sessionID); err != nil {
			logger.Error(err)
		}
	}

	return c.Redirect("/signup/", fiber.StatusSeeOther)
}

// StartSignup is a function that is used to collect the candidate email and begin the signup flow
func (a *Auth) StartSignup(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email"`
		Terms bool   `json:"terms"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	sessionID, state := a.loadSession(c)
	if state.State == schemas.SignupStateAuthenticated {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" {
		return errors.EmailRequired(c)
	}
	if !payload.Terms {
		return errors.TermsNotAccepted(c)
	}

	v := validator.New()
	if err := v.Var(email, "required,email"); err != nil {
		return errors.BadRequest(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	ownerID, available, verified, err := userS.IsEmailAvailable(email)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}
	if !available {
		if verified {
			return errors.EmailAlreadyUsed(c)
		}

		// an abandoned unverified signup does not get to squat an address
		if err := userS.DeleteUser(models.User{ID: ownerID}); err != nil {
			logger.Error(err)
			return errors.EmailAlreadyUsed(c)
		}
	}

	if sessionID == "" {
		sessionID, err = a.newSession(c)
		if err != nil {
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	err = a.sessionStore().Save(c.Context(), sessionID, &schemas.SignupSession{
		State: schemas.SignupStateEmailCollected,
		Email: email,
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// SetPassword is a function that is used to set the password, create the user and issue the first OTP
func (a *Auth) SetPassword(c *fiber.Ctx) error {
	var payload struct {
		Password1 string `json:"password1"`
		Password2 string `json:"password2"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	sessionID, state := a.loadSession(c)
	if state.State == schemas.SignupStateAuthenticated {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}
	if state.State != schemas.SignupStateEmailCollected || state.Email == "" {
		return c.Redirect("/signup/", fiber.StatusSeeOther)
	}

	if payload.Password1 == "" {
		return errors.PasswordRequired(c)
	}
	if payload.Password1 != payload.Password2 {
		return errors.PasswordsDoNotMatch(c)
	}
	if !validate.PasswordStrength(payload.Password1) {
		return errors.WeakPassword(c)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password1), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	newUser, err := userS.Create(models.User{
		Email:    state.Email,
		Username: state.Email,
		Password: string(hashedPassword),
	})
	if err != nil {
		if ok := (errors.CheckDBError{}.DuplicateKey(err)); ok {
			return errors.EmailAlreadyUsed(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	otpS := services.OTP{
		Conn: a.Conn,
	}
	code, err := otpS.Issue(&newUser)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	emailClient := utils.Email{
		Env: a.Env,
	}
	emailClient.SendOTP(newUser.Email, code)

	err = a.sessionStore().Save(c.Context(), sessionID, &schemas.SignupSession{
		State:  schemas.SignupStateUserCreated,
		Email:  state.Email,
		UserID: newUser.ID.String(),
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// signupUser loads the user the wizard session refers to; a dangling reference
// discards the session so the flow restarts from the beginning
func (a *Auth) signupUser(c *fiber.Ctx, sessionID string, state *schemas.SignupSession) (*models.User, error) {
	userID, err := uuid.Parse(state.UserID)
	if err != nil {
		return nil, a.restart(c, sessionID)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	user, err := userS.GetUserWithID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, a.restart(c, sessionID)
		}

		logger.Error(err)
		return nil, errors.InternalServerErr(c)
	}

	if user.Email != state.Email {
		return nil, a.restart(c, sessionID)
	}

	return user, nil
}

// VerifyOTP is a function that is used to verify the emailed OTP and authenticate the session
func (a *Auth) VerifyOTP(c *fiber.Ctx) error {
	var payload struct {
		OTP string `json:"otp"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	sessionID, state := a.loadSession(c)
	if state.State == schemas.SignupStateAuthenticated {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}
	if state.State != schemas.SignupStateUserCreated || state.Email == "" || state.UserID == "" {
		return c.Redirect("/signup/", fiber.StatusSeeOther)
	}

	user, errRes := a.signupUser(c, sessionID, state)
	if user == nil {
		return errRes
	}

	otpS := services.OTP{
		Conn: a.Conn,
	}

	ok, err := otpS.Verify(user, strings.TrimSpace(payload.OTP))
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}
	if !ok {
		return errors.OTPNotValid(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}
	if err := userS.MarkVerified(*user.ID); err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = a.sessionStore().Save(c.Context(), sessionID, &schemas.SignupSession{
		State:       schemas.SignupStateAuthenticated,
		UserID:      user.ID.String(),
		ShowWelcome: true,
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// ResendOTP is a function that is used to issue a fresh OTP without invalidating the previous one
func (a *Auth) ResendOTP(c *fiber.Ctx) error {
	sessionID, state := a.loadSession(c)
	if state.State == schemas.SignupStateAuthenticated {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}
	if state.State != schemas.SignupStateUserCreated || state.Email == "" || state.UserID == "" {
		return c.Redirect("/signup/", fiber.StatusSeeOther)
	}

	user, errRes := a.signupUser(c, sessionID, state)
	if user == nil {
		return errRes
	}

	otpS := services.OTP{
		Conn: a.Conn,
	}
	code, err := otpS.Issue(user)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	emailClient := utils.Email{
		Env: a.Env,
	}
	emailClient.SendOTP(user.Email, code)

	return errors.Done(c)
}

// LoginWEmailAndPassword is a funciton that is used to login the user with the email and password
func (a *Auth) LoginWEmailAndPassword(c *fiber.Ctx) error {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	sessionID, state := a.loadSession(c)
	if state.State == schemas.SignupStateAuthenticated {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		return errors.BadRequest(c)
	}

	userS := services.User{
		Conn: a.Conn,
	}

	// unknown email and wrong password answer identically so accounts
	// cannot be enumerated through the login form
	user, err := userS.GetUserWithEmail(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.IncorrectCredentials(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return errors.IncorrectCredentials(c)
	}

	if sessionID != "" {
		if err := a.sessionStore().Destroy(c.Context(), sessionID); err != nil {
			logger.Error(err)
		}
	}

	sessionID, err = a.newSession(c)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	err = a.sessionStore().Save(c.Context(), sessionID, &schemas.SignupSession{
		State:  schemas.SignupStateAuthenticated,
		UserID: user.ID.String(),
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}

// Logout is a function that is used to discard the session and expire the session cookie
func (a *Auth) Logout(c *fiber.Ctx) error {
	sessionID, _ := a.loadSession(c)
	if sessionID != "" {
		if err := a.sessionStore().Destroy(c.Context(), sessionID); err != nil {
			logger.Error(err)
		}
	}

	expired := time.Now().Add(-time.Hour * 24)
	c.Cookie(&fiber.Cookie{
		Name:    "session",
		Value:   "",
		Expires: expired,
	})

	return errors.Done(c)
}

// Welcome is a function that serves the one shot welcome page shown right after signup
func (a *Auth) Welcome(c *fiber.Ctx) error {
	sessionID, state := a.loadSession(c)
	if state.State != schemas.SignupStateAuthenticated {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	if !state.ShowWelcome {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}

	state.ShowWelcome = false
	if err := a.sessionStore().Save(c.Context(), sessionID, state); err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c)
}
