package chat

import "testing"

func TestTranscriptValidateEmpty(t *testing.T) {
	if err := (Transcript{}).Validate(); err == nil {
		t.Fatal("expected error for empty transcript")
	}
}

func TestTranscriptValidateUnknownRole(t *testing.T) {
	transcript := Transcript{
		{Role: RoleUser, Content: "Hi"},
		{Role: Role("tool"), Content: "nope"},
	}
	if err := transcript.Validate(); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestTranscriptValidateOK(t *testing.T) {
	transcript := Transcript{
		{Role: RoleSystem, Content: "rules"},
		{Role: RoleAssistant, Content: "Bonjour !"},
		{Role: RoleUser, Content: "Hi"},
	}
	if err := transcript.Validate(); err != nil {
		t.Fatalf("Validate err: %v", err)
	}
}
