package schemas

// SignupState is the position of a session within the signup/login flow
type SignupState string

const (
	// SignupStateAnonymous -> no flow has been started on the session
	SignupStateAnonymous SignupState = "anonymous"
	// SignupStateEmailCollected -> a candidate email passed validation
	SignupStateEmailCollected SignupState = "email_collected"
	// SignupStateUserCreated -> the password was accepted and the user row exists
	SignupStateUserCreated SignupState = "user_created"
	// SignupStateAuthenticated -> the OTP was verified or the password login succeeded
	SignupStateAuthenticated SignupState = "authenticated"
)

// SignupSession is the per session state of the signup/login flow; it is
// stored as a JSON value in redis keyed by the session uuid
type SignupSession struct {
	State       SignupState `json:"state"`
	Email       string      `json:"email,omitempty"`
	UserID      string      `json:"user_id,omitempty"`
	ShowWelcome bool        `json:"show_welcome,omitempty"`
}
