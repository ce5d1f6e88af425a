package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/campuschat/backend/internal/model/chat"
	"github.com/campuschat/backend/internal/model/lang"
	"github.com/campuschat/backend/internal/service/ai"
	chatService "github.com/campuschat/backend/internal/service/chat"
)

type stubResponder struct {
	reply ai.Reply
	calls int
}

func (s *stubResponder) Complete(_ context.Context, _ chatmodel.Transcript, language lang.Language, sessionID string) (ai.Reply, error) {
	s.calls++
	return s.reply, nil
}

func setupRouter() (*chi.Mux, *stubResponder) {
	responder := &stubResponder{reply: ai.Reply{Role: chatmodel.RoleAssistant, Content: "ok"}}
	chatSvc := chatService.NewService(responder)
	handler := New(chatSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, responder
}

type sessionResponse struct {
	Session struct {
		ID          string `json:"id"`
		PersonaName string `json:"personaName"`
	} `json:"session"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func createSession(t *testing.T, r http.Handler) sessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var decoded sessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	return decoded
}

func postMessage(t *testing.T, r http.Handler, sessionID, content string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"content": content})

	req := httptest.NewRequest(http.MethodPost, "/session/"+sessionID+"/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateSessionReturnsGreeting(t *testing.T) {
	r, _ := setupRouter()

	created := createSession(t, r)
	if created.Session.ID == "" {
		t.Fatal("missing session id")
	}
	if created.Session.PersonaName == "" {
		t.Fatal("missing persona name")
	}
	if len(created.Messages) != 1 || created.Messages[0].Role != "assistant" {
		t.Fatalf("unexpected greeting payload: %+v", created.Messages)
	}
}

func TestSendMessageLanguageSelection(t *testing.T) {
	r, responder := setupRouter()
	created := createSession(t, r)

	resp := postMessage(t, r, created.Session.ID, "anglais")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var decoded struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if len(decoded.Messages) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(decoded.Messages))
	}
	if responder.calls != 0 {
		t.Fatal("language selection must not call the gateway")
	}
}

func TestSendMessageForwardsToGateway(t *testing.T) {
	r, responder := setupRouter()
	created := createSession(t, r)

	postMessage(t, r, created.Session.ID, "english")
	resp := postMessage(t, r, created.Session.ID, "What is 2+2?")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if responder.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", responder.calls)
	}

	var decoded struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if len(decoded.Messages) != 2 || decoded.Messages[1].Content != "ok" {
		t.Fatalf("unexpected reply payload: %+v", decoded.Messages)
	}
}

func TestSendMessageEmptyContent(t *testing.T) {
	r, responder := setupRouter()
	created := createSession(t, r)

	resp := postMessage(t, r, created.Session.ID, "   ")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var decoded struct {
		Messages []json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if len(decoded.Messages) != 0 {
		t.Fatalf("expected no new turns, got %d", len(decoded.Messages))
	}
	if responder.calls != 0 {
		t.Fatal("empty input must not call the gateway")
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	resp := postMessage(t, r, "missing", "Hi")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListMessages(t *testing.T) {
	r, _ := setupRouter()
	created := createSession(t, r)

	req := httptest.NewRequest(http.MethodGet, "/session/"+created.Session.ID+"/messages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestListLanguages(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var decoded struct {
		Languages []struct {
			Tag         string `json:"tag"`
			Label       string `json:"label"`
			Placeholder string `json:"placeholder"`
			SendLabel   string `json:"sendLabel"`
		} `json:"languages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if len(decoded.Languages) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(decoded.Languages))
	}
	for _, l := range decoded.Languages {
		if l.Tag == "" || l.Label == "" || l.Placeholder == "" || l.SendLabel == "" {
			t.Fatalf("incomplete language entry: %+v", l)
		}
	}
}
