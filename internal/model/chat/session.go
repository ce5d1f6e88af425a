package chat

import (
	"time"

	"github.com/campuschat/backend/internal/model/lang"
)

// Session captures a transient anonymous conversation. The persona name is
// derived deterministically from the session id, so it stays stable for the
// whole session. Language is empty until the user selects one.
type Session struct {
	ID          string        `json:"id"`
	PersonaName string        `json:"personaName"`
	Language    lang.Language `json:"language,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}
