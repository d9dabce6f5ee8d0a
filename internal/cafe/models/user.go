// Package models holds the café's registry records. User and Session carry
// their own lifecycle rules; everything that needs a clock or an id
// generator receives it from the service layer.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/cybercafe/internal/money"
)

// User is a registry record: identity, credential hash, and the append-only
// history of the user's sessions. TotalSpent always equals the sum of
// TotalAmount over the user's closed sessions.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	JoinedAt     time.Time
	Sessions     []*Session
	TotalSpent   money.Amount
}

// ActiveSession returns the user's most recent session if it is still
// active, nil otherwise. A user has at most one active session, and it is
// always the last one started.
func (u *User) ActiveSession() *Session {
	if n := len(u.Sessions); n > 0 && u.Sessions[n-1].Active {
		return u.Sessions[n-1]
	}
	return nil
}

// NextSessionID derives the id for the user's next session. Session ids
// are unique within a user's history, not globally.
func (u *User) NextSessionID() string {
	return fmt.Sprintf("%s_%d", u.ID, len(u.Sessions)+1)
}
