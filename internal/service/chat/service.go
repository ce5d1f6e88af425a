// Package chat holds the per-session conversation state: the transcript, the
// selected language and the single-flight loading flag.
package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuschat/backend/internal/model/chat"
	"github.com/campuschat/backend/internal/model/lang"
	"github.com/campuschat/backend/internal/model/persona"
	"github.com/campuschat/backend/internal/service/ai"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrBusy is returned while a completion is already in flight for the
	// session. The loading flag is the mutual-exclusion signal: callers must
	// hold new submissions until the pending one resolves.
	ErrBusy = errors.New("a completion is already in flight")
)

// Responder produces the assistant reply for a submitted transcript.
type Responder interface {
	Complete(ctx context.Context, transcript chat.Transcript, language lang.Language, sessionID string) (ai.Reply, error)
}

type state struct {
	session  chat.Session
	turns    chat.Transcript
	loading  bool
	selected bool
	language lang.Language
}

// Service encapsulates conversation state management for anonymous sessions.
// State lives in memory only and is discarded when the process ends.
type Service struct {
	mu        sync.RWMutex
	responder Responder
	sessions  map[string]*state
}

// NewService bootstraps the in-memory conversation store. A nil responder is
// allowed; submissions then resolve with the localized failure turn.
func NewService(responder Responder) *Service {
	return &Service{
		responder: responder,
		sessions:  make(map[string]*state),
	}
}

// CreateSession provisions an anonymous session and seeds the greeting turn.
func (s *Service) CreateSession(_ context.Context) (chat.Session, chat.Transcript, error) {
	id := uuid.NewString()
	session := chat.Session{
		ID:          id,
		PersonaName: persona.Name(lang.Default(), id),
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := &state{session: session}
	s.sessions[id] = st
	seedGreeting(st)
	return st.session, cloneTurns(st.turns), nil
}

// Initialize seeds the opening assistant greeting. It is idempotent: a session
// that already has turns is left untouched.
func (s *Service) Initialize(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	seedGreeting(st)
	return nil
}

// Submit runs one conversation transition for the trimmed user input and
// returns the newly appended turns. Empty input is a no-op. Before a language
// has been selected, input naming a supported language is treated as the
// selection command and answered locally, without an upstream call. Anything
// else is appended as a user turn and forwarded to the responder; a failed
// completion resolves into the localized error turn, never into a fault.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (chat.Transcript, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	s.mu.Lock()
	st, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if st.loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}

	if !st.selected {
		if selected, ok := lang.Parse(text); ok {
			added := selectLanguage(st, selected, text)
			s.mu.Unlock()
			return added, nil
		}
	}

	userTurn := chat.Turn{Role: chat.RoleUser, Content: text}
	st.turns = append(st.turns, userTurn)
	st.loading = true
	transcript := cloneTurns(st.turns)
	language := lang.Default()
	if st.selected {
		language = st.language
	}
	s.mu.Unlock()

	reply, err := s.complete(ctx, transcript, language, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	st.loading = false

	assistant := chat.Turn{Role: chat.RoleAssistant}
	if err != nil {
		log.Printf("[chat] completion failed session=%s: %v", sessionID, err)
		assistant.Content = language.ErrorMessage()
	} else {
		assistant.Content = reply.Content
	}
	st.turns = append(st.turns, assistant)

	return chat.Transcript{userTurn, assistant}, nil
}

// Session retrieves session metadata.
func (s *Service) Session(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return st.session, nil
}

// Transcript returns a copy of the stored turns.
func (s *Service) Transcript(_ context.Context, sessionID string) (chat.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneTurns(st.turns), nil
}

func (s *Service) complete(ctx context.Context, transcript chat.Transcript, language lang.Language, sessionID string) (ai.Reply, error) {
	if s.responder == nil {
		return ai.Reply{}, errors.New("no responder configured")
	}
	return s.responder.Complete(ctx, transcript, language, sessionID)
}

// selectLanguage records the selection and appends the user turn plus the
// localized confirmation. The persona name is re-derived for the chosen
// language; being a pure function of the session id, it stays stable from
// here on. Caller holds the lock.
func selectLanguage(st *state, selected lang.Language, text string) chat.Transcript {
	st.selected = true
	st.language = selected
	st.session.Language = selected
	st.session.PersonaName = persona.Name(selected, st.session.ID)

	added := chat.Transcript{
		{Role: chat.RoleUser, Content: text},
		{Role: chat.RoleAssistant, Content: selected.Confirmation(st.session.PersonaName)},
	}
	st.turns = append(st.turns, added...)
	return added
}

func seedGreeting(st *state) {
	if len(st.turns) > 0 {
		return
	}
	st.turns = append(st.turns, chat.Turn{
		Role:    chat.RoleAssistant,
		Content: lang.Greeting(st.session.PersonaName),
	})
}

func cloneTurns(turns chat.Transcript) chat.Transcript {
	copied := make(chat.Transcript, len(turns))
	copy(copied, turns)
	return copied
}
