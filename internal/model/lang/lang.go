// Package lang defines the closed set of interface languages and the
// localized strings the chat widget shows for each of them.
package lang

import (
	"fmt"
	"strings"
)

// Language tags one of the supported interface languages.
type Language string

const (
	French  Language = "french"
	Arabic  Language = "arabic"
	English Language = "english"
)

// Default is the fallback used whenever no language has been selected or an
// unrecognized tag arrives. Sessions open in French, so French is the single
// documented default.
func Default() Language { return French }

// All lists the supported languages in presentation order.
func All() []Language {
	return []Language{French, Arabic, English}
}

// aliases maps the names users type or the frontend sends to language tags.
// Lookup is case-insensitive.
var aliases = map[string]Language{
	"french":   French,
	"français": French,
	"francais": French,
	"arabic":   Arabic,
	"arabe":    Arabic,
	"العربية":  Arabic,
	"english":  English,
	"anglais":  English,
}

// Parse resolves a language name or tag. It accepts the native names offered
// in the greeting ("français", "arabe", "anglais") as well as English tags.
func Parse(s string) (Language, bool) {
	l, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// Greeting is the opening assistant turn seeded into every new session.
// It is always French: no language has been selected yet at that point.
func Greeting(personaName string) string {
	return fmt.Sprintf("Bonjour ! Je suis %s, votre assistante pédagogique. Quelle langue souhaitez-vous utiliser ? [Français/Arabe/Anglais]", personaName)
}

// Confirmation is the assistant turn acknowledging a language selection.
func (l Language) Confirmation(personaName string) string {
	switch l {
	case Arabic:
		return fmt.Sprintf("أنا %s، حسنا! كيف يمكنني مساعدتك اليوم؟", personaName)
	case English:
		return fmt.Sprintf("Great, I am %s! How can I help you today?", personaName)
	default:
		return fmt.Sprintf("Parfait, je suis %s ! Comment puis-je vous aider aujourd'hui ?", personaName)
	}
}

// ErrorMessage is the turn shown to the user when a completion attempt fails.
func (l Language) ErrorMessage() string {
	switch l {
	case Arabic:
		return "عذرا، حدث خطأ. يرجى المحاولة مرة أخرى"
	case English:
		return "Sorry, I encountered an error. Please try again."
	default:
		return "Désolé, une erreur est survenue. Veuillez réessayer."
	}
}

// Label is the native display name shown in the language picker.
func (l Language) Label() string {
	switch l {
	case Arabic:
		return "العربية"
	case English:
		return "English"
	default:
		return "Français"
	}
}

// Placeholder is the input-field hint for the language.
func (l Language) Placeholder() string {
	switch l {
	case Arabic:
		return "اطرح سؤالك..."
	case English:
		return "Ask your question..."
	default:
		return "Posez votre question..."
	}
}

// SendLabel is the submit-button caption for the language.
func (l Language) SendLabel() string {
	switch l {
	case Arabic:
		return "إرسال"
	case English:
		return "Send"
	default:
		return "Envoyer"
	}
}
