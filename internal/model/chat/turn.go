package chat

import (
	"errors"
	"fmt"
)

// Role tags a single turn in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Turn is one message in a conversation. Turns are immutable once appended
// and their insertion order is the conversational order.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered history of turns exchanged in one session.
type Transcript []Turn

// Validate checks the invariants a transcript must satisfy before it can be
// forwarded upstream: it is non-empty and every role belongs to the closed set.
func (t Transcript) Validate() error {
	if len(t) == 0 {
		return errors.New("transcript must not be empty")
	}
	for i, turn := range t {
		if !turn.Role.Valid() {
			return fmt.Errorf("turn %d has unknown role %q", i, turn.Role)
		}
	}
	return nil
}
