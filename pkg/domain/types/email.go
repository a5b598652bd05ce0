package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Email identifies a cohort member. All repository records (uploaded images,
// messages, generation status) are keyed by email, not by a synthetic ID.
type Email string

// String returns the string representation of the email
func (e Email) String() string {
	return string(e)
}

// Validate checks that the email is non-empty and minimally well-formed
func (e Email) Validate() error {
	s := string(e)
	if s == "" {
		return goerr.New("email is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return goerr.New("invalid email format", goerr.V("email", s))
	}
	return nil
}
