// Package ai implements the completion gateway: it turns a validated
// transcript into exactly one provider call and normalizes the outcome.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/campuschat/backend/internal/model/chat"
	"github.com/campuschat/backend/internal/model/lang"
	"github.com/campuschat/backend/internal/model/persona"
)

var (
	// ErrInvalidRequest marks a malformed or incomplete transcript.
	// Terminal: the request is never retried.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstream marks a failed or unusable provider completion. The gateway
	// never retries; the caller decides what to do.
	ErrUpstream = errors.New("upstream failure")
)

// Metadata describes how a reply was produced.
type Metadata struct {
	PersonaName string        `json:"personaName"`
	Language    lang.Language `json:"language"`
}

// Reply is the normalized gateway response.
type Reply struct {
	Role     chat.Role `json:"role"`
	Content  string    `json:"content"`
	Metadata Metadata  `json:"metadata"`
}

// Service encapsulates the provider-facing completion pipeline.
type Service struct {
	chatModel model.BaseChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt/model chain once per process.
func NewService(ctx context.Context, chatModel model.BaseChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chatModel: chatModel, chain: runnable}, nil
}

// Complete runs one request through the gateway: validate the transcript,
// resolve the persona, build the localized prompt, invoke the provider and
// normalize its reply. Each request is a single attempt.
func (s *Service) Complete(ctx context.Context, transcript chat.Transcript, language lang.Language, sessionID string) (Reply, error) {
	if err := transcript.Validate(); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	last := transcript[len(transcript)-1]
	if last.Role != chat.RoleUser {
		return Reply{}, fmt.Errorf("%w: last message must be from user", ErrInvalidRequest)
	}

	name := persona.Name(language, sessionID)
	input := map[string]any{
		"system":  systemPrompt(language, name),
		"history": historyMessages(transcript[:len(transcript)-1]),
		"query":   last.Content,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	content := normalizeReply(response.Content)
	if content == "" {
		return Reply{}, fmt.Errorf("%w: provider returned empty content", ErrUpstream)
	}

	log.Printf("[ai] generated reply session=%s language=%s persona=%s length=%d", sessionID, language, name, len(content))
	return Reply{
		Role:     chat.RoleAssistant,
		Content:  content,
		Metadata: Metadata{PersonaName: name, Language: language},
	}, nil
}

// historyMessages converts prior turns for the prompt placeholder. The final
// user turn travels separately as the query.
func historyMessages(turns chat.Transcript) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		case chat.RoleSystem:
			history = append(history, schema.SystemMessage(turn.Content))
		}
	}
	return history
}

// normalizeReply strips one matching code-fence pair at the string boundaries
// and trims surrounding whitespace. Fences inside the text are preserved.
func normalizeReply(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 6 && strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(s[3 : len(s)-3])
	}
	return s
}
