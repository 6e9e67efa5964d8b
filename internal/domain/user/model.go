package user

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered account. Username is immutable after creation and the
// password is an opaque demo credential, never hashed in this deployment.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if u.Password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	UserID   int64
	Username string
}
