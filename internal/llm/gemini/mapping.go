package gemini

import (
	"errors"
	"strings"

	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// Gemini knows only two conversational roles. Assistant turns become "model";
// user and system turns both become "user", which is how the system
// instruction ends up as the first provider turn.
const (
	roleUser  = "user"
	roleModel = "model"
)

func providerRole(role schema.RoleType) string {
	switch role {
	case schema.Assistant:
		return roleModel
	case schema.User, schema.System:
		return roleUser
	default:
		return roleUser
	}
}

func internalRole(role string) schema.RoleType {
	if role == roleModel {
		return schema.Assistant
	}
	return schema.User
}

func toContents(input []*schema.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(input))
	for _, msg := range input {
		contents = append(contents, &genai.Content{
			Role:  providerRole(msg.Role),
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	return contents
}

func fromResponse(resp *genai.GenerateContentResponse) (*schema.Message, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("gemini: response contains no candidates")
	}

	content := resp.Candidates[0].Content
	var text strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	return &schema.Message{
		Role:    internalRole(content.Role),
		Content: text.String(),
	}, nil
}
