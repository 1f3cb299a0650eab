package recommend

import "strings"

// baseKeywords seed the semantic query for each module before any
// answer-derived refinement.
var baseKeywords = map[string][]string{
	"tosse":       {"tosse"},
	"febre":       {"febre", "antitérmico"},
	"diarreia":    {"diarreia", "reidratação"},
	"dor_cabeca":  {"dor de cabeça", "analgésico"},
	"constipacao": {"constipação", "laxante"},
	"dor_lombar":  {"dor lombar", "analgésico"},
}

// moduleKeywords feed the literal containment stage when the vector
// match comes up empty. Stored pre-normalized.
var moduleKeywords = map[string][]string{
	"tosse": {
		"tosse", "expectoracao", "secrecao", "bronquite", "respiratoria",
		"pulmonar", "antitussigeno", "expectorante", "mucolitico",
	},
	"febre": {
		"febre", "febril", "hipertermia", "temperatura", "calafrio",
		"antipiretico", "antitermico", "analgesico",
	},
	"dor_cabeca": {
		"dor de cabeca", "cefaleia", "enxaqueca", "tensao", "analgesico",
	},
	"diarreia": {
		"diarreia", "evacuacao", "fezes", "intestinal", "antidiarreico",
		"probiotico", "reidratacao",
	},
	"constipacao": {
		"constipacao", "prisao de ventre", "obstipacao", "intestinal", "laxante",
	},
	"dor_lombar": {
		"dor lombar", "lombalgia", "coluna", "muscular", "relaxante",
		"analgesico", "anti inflamatorio",
	},
}

// answerTerm refines the query when a specific question was answered
// affirmatively (or, for durations, above a cut-off).
type answerTerm struct {
	questionID string
	terms      string
	minValue   float64 // for number answers; 0 means any affirmative bool
}

var answerTerms = map[string][]answerTerm{
	"tosse": {
		{questionID: "tosse_7", terms: "tosse produtiva catarro expectorante mucolítico"},
		{questionID: "tosse_8", terms: "tosse seca irritativa antitussígeno"},
		{questionID: "tosse_9", terms: "tosse alérgica rinite antialérgico"},
		{questionID: "tosse_6", terms: "tosse persistente", minValue: 7},
	},
	"febre": {
		{questionID: "febre_17", terms: "calafrios"},
	},
	"diarreia": {
		{questionID: "diarreia_7", terms: "fezes aquosas antidiarreico"},
		{questionID: "diarreia_15", terms: "desidratação reidratação eletrólitos"},
		{questionID: "diarreia_18", terms: "flora intestinal probiótico"},
	},
	"dor_cabeca": {
		{questionID: "dor_cabeca_18", terms: "enxaqueca"},
	},
	"constipacao": {
		{questionID: "constipacao_14", terms: "fezes duras amolecimento"},
	},
	"dor_lombar": {
		{questionID: "dor_lombar_6", terms: "muscular contratura relaxante"},
	},
}

// buildQuery derives the semantic query for a module from the answers.
func buildQuery(module string, answers map[string]interface{}) string {
	parts := append([]string{}, baseKeywords[module]...)
	if len(parts) == 0 {
		parts = []string{strings.ReplaceAll(module, "_", " ")}
	}

	for _, at := range answerTerms[module] {
		v, ok := answers[at.questionID]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case bool:
			if val && at.minValue == 0 {
				parts = append(parts, at.terms)
			}
		case float64:
			if at.minValue > 0 && val > at.minValue {
				parts = append(parts, at.terms)
			}
		case int:
			if at.minValue > 0 && float64(val) > at.minValue {
				parts = append(parts, at.terms)
			}
		}
	}

	return expandQuery(strings.Join(parts, " "))
}
