package interview

import (
	"strings"

	"github.com/arthur04112006/Pharm-Assist/pkg/textnorm"
)

// Words that mark a question as answerable from the registration record:
// age, pregnancy/lactation, and frail-elderly status are captured at
// registration time and should not be asked again during the interview.
// Matching is on whole normalized words so that e.g. "atividades" does not
// match "idade".
var knownDataWords = map[string]bool{
	"idade":    true,
	"gestante": true,
	"lactante": true,
	"gestacao": true,
	"lactacao": true,
	"puerpera": true,
	"idoso":    true,
	"idosa":    true,
}

var knownDataPhrases = []string{
	"alta vulnerabilidade",
}

// FilterKnown removes questions whose answer is already present in the
// patient registration record. Question order and IDs of the surviving
// questions are preserved.
func FilterKnown(questions []Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !answerableFromRegistration(q.Text) {
			out = append(out, q)
		}
	}
	return out
}

func answerableFromRegistration(text string) bool {
	normalized := textnorm.Normalize(text)
	for _, w := range strings.Split(normalized, " ") {
		if knownDataWords[w] {
			return true
		}
	}
	for _, p := range knownDataPhrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}
