package model

import (
	"time"

	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

// User represents a cohort member
type User struct {
	Email                types.Email
	Name                 string
	PhotoURL             string
	Quote                string
	PreferencesCompleted bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DisplayName returns the user's name, falling back to the email address
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email.String()
}
