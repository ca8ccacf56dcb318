package schema

import "github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/converting"

const (
	LoginErrorIncorrectCredentials = "Incorrect username or password"
	LoginErrorInternalServer       = "Internal Server Error"
)

// LoginResult is either the projection of the login token claims or a login failure.
type LoginResult struct {
	JWTToken      string `json:"jwt_token,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Username      string `json:"username,omitempty"`
	Issued        int64  `json:"issued,omitempty"`
	Expires       int64  `json:"expires,omitempty"`

	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewLoginFailure(message string) LoginResult {
	return LoginResult{
		Success: converting.PointerToValue(false),
		Error:   message,
	}
}

func (l LoginResult) Failed() bool {
	return l.Success != nil && !*l.Success
}
