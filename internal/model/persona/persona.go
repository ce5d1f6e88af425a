// Package persona derives the assistant identity presented for a session.
package persona

import "github.com/campuschat/backend/internal/model/lang"

// pools holds the fixed display-name pool for each supported language.
var pools = map[lang.Language][]string{
	lang.French:  {"Léa", "Thomas", "Sophie", "Nicolas", "Camille"},
	lang.Arabic:  {"Youssef", "Amina", "Karim", "Lina", "Mehdi"},
	lang.English: {"Emma", "John", "Olivia", "Michael", "Sarah"},
}

// Name picks the persona display name for a session. The choice is a pure
// function of language and session id, so the same session always meets the
// same assistant regardless of how many messages it sends.
func Name(language lang.Language, sessionID string) string {
	pool, ok := pools[language]
	if !ok {
		pool = pools[lang.Default()]
	}
	return pool[hash(sessionID)%len(pool)]
}

// hash sums the code points of the session id. Stability matters here, not
// distribution quality.
func hash(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}
