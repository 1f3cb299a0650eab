package triage

import "strings"

// Registry resolves the weight, category and critical flag of every
// interview question. Shipped modules carry curated tables keyed by
// question ID; questions of unknown IDs (e.g. from an on-disk corpus
// override) fall back to a phrasing heuristic. The registry also holds
// the per-module profile red-flag rules.
type Registry struct {
	tables map[string]map[string]QuestionWeight
}

func NewRegistry() *Registry {
	return &Registry{tables: curatedWeights}
}

// Lookup implements interview.WeightSource.
func (r *Registry) Lookup(module, questionID, text string) (float64, string, bool) {
	if table, ok := r.tables[module]; ok {
		if qw, ok := table[questionID]; ok {
			return qw.Weight, qw.Category, qw.Critical
		}
	}
	qw := heuristicWeight(text)
	return qw.Weight, qw.Category, qw.Critical
}

// Get returns the registry entry for a question; found is false when the
// entry was synthesized by the heuristic.
func (r *Registry) Get(module, questionID, text string) (QuestionWeight, bool) {
	if table, ok := r.tables[module]; ok {
		if qw, ok := table[questionID]; ok {
			return qw, true
		}
	}
	return heuristicWeight(text), false
}

// HasModule reports whether the module has a curated table.
func (r *Registry) HasModule(module string) bool {
	_, ok := r.tables[module]
	return ok
}

// heuristicWeight classifies a question by phrasing when no curated entry
// exists. Duration phrasing is checked first: "Duração da febre (dias)"
// asks how long, not whether the danger sign is present.
func heuristicWeight(text string) QuestionWeight {
	t := strings.ToLower(text)

	for _, dur := range []string{"duração", "duracao", "dias", "semanas", "quanto tempo"} {
		if strings.Contains(t, dur) {
			return QuestionWeight{Weight: 2.0, Category: CategoryDuration}
		}
	}
	for _, danger := range []string{"febre", "sangue", "dor"} {
		if strings.Contains(t, danger) {
			return QuestionWeight{Weight: 2.5, Category: CategorySeverity, Critical: true}
		}
	}
	for _, hist := range []string{"histórico", "historico", "uso de", "medicamento", "doença", "doenca"} {
		if strings.Contains(t, hist) {
			return QuestionWeight{Weight: 1.5, Category: CategoryHistory}
		}
	}
	return QuestionWeight{Weight: 1.0, Category: CategorySymptom}
}

// ProfileRule forces a referral based on the registration profile alone,
// before any answer weighing.
type ProfileRule struct {
	Description string
	Match       func(PatientProfile) bool
}

// ProfileRules returns the red-flag rules for a module.
func (r *Registry) ProfileRules(module string) []ProfileRule {
	return profileRules[module]
}

var profileRules = map[string][]ProfileRule{
	"febre": {
		{
			Description: "criança menor de 2 meses com febre",
			Match:       func(p PatientProfile) bool { return p.AgeMonths > 0 && p.AgeMonths < 2 },
		},
	},
	"diarreia": {
		{
			Description: "criança menor de 2 anos com diarreia",
			Match:       func(p PatientProfile) bool { return p.AgeMonths > 0 && p.AgeMonths < 24 },
		},
	},
	"constipacao": {
		{
			Description: "criança de até 6 anos com constipação",
			Match:       func(p PatientProfile) bool { return p.AgeYears > 0 && p.AgeYears <= 6 },
		},
	},
}

var curatedWeights = map[string]map[string]QuestionWeight{
	"tosse": {
		"tosse_1":  {1.0, CategoryProfile, false},
		"tosse_2":  {2.0, CategoryProfile, false},
		"tosse_3":  {2.0, CategoryProfile, false},
		"tosse_4":  {1.5, CategoryProfile, false},
		"tosse_5":  {2.5, CategoryProfile, true},
		"tosse_6":  {2.0, CategoryDuration, false},
		"tosse_7":  {1.5, CategorySymptom, false},
		"tosse_8":  {1.5, CategorySymptom, false},
		"tosse_9":  {1.0, CategoryHistory, false},
		"tosse_10": {1.5, CategorySymptom, false},
		"tosse_11": {2.0, CategorySeverity, false},
		"tosse_12": {3.0, CategorySeverity, true},
		"tosse_13": {3.0, CategorySeverity, true},
		"tosse_14": {2.0, CategorySeverity, false},
		"tosse_15": {2.0, CategorySeverity, false},
		"tosse_16": {3.0, CategorySeverity, true},
		"tosse_17": {2.5, CategorySeverity, true},
		"tosse_18": {2.5, CategorySeverity, true},
		"tosse_19": {2.0, CategorySeverity, false},
		"tosse_20": {2.0, CategorySeverity, false},
		"tosse_21": {1.0, CategorySymptom, false},
		"tosse_22": {1.0, CategorySymptom, false},
		"tosse_23": {1.0, CategorySymptom, false},
		"tosse_24": {1.0, CategorySymptom, false},
		"tosse_25": {1.0, CategorySymptom, false},
		"tosse_26": {1.5, CategorySymptom, false},
		"tosse_27": {1.5, CategorySymptom, false},
		"tosse_28": {2.5, CategorySeverity, true},
		"tosse_29": {3.0, CategorySeverity, true},
		"tosse_30": {2.5, CategorySeverity, true},
		"tosse_31": {1.5, CategoryHistory, false},
		"tosse_32": {1.5, CategoryHistory, false},
	},
	"febre": {
		"febre_1":  {1.0, CategoryProfile, false},
		"febre_2":  {2.0, CategoryProfile, false},
		"febre_3":  {2.5, CategorySeverity, false},
		"febre_4":  {2.0, CategoryDuration, false},
		"febre_5":  {3.0, CategorySeverity, true},
		"febre_6":  {3.0, CategorySeverity, true},
		"febre_7":  {3.0, CategorySeverity, true},
		"febre_8":  {3.0, CategorySeverity, true},
		"febre_9":  {3.0, CategorySeverity, true},
		"febre_10": {2.5, CategorySeverity, true},
		"febre_11": {2.5, CategorySeverity, true},
		"febre_12": {1.5, CategorySymptom, false},
		"febre_13": {1.5, CategorySymptom, false},
		"febre_14": {1.5, CategoryHistory, false},
		"febre_15": {2.5, CategoryHistory, true},
		"febre_16": {2.0, CategorySeverity, false},
		"febre_17": {1.5, CategorySymptom, false},
		"febre_18": {1.5, CategoryHistory, false},
	},
	"diarreia": {
		"diarreia_1":  {1.0, CategoryProfile, false},
		"diarreia_2":  {2.0, CategoryProfile, false},
		"diarreia_3":  {2.0, CategoryProfile, false},
		"diarreia_4":  {2.5, CategoryProfile, true},
		"diarreia_5":  {2.0, CategoryDuration, false},
		"diarreia_6":  {2.0, CategorySeverity, false},
		"diarreia_7":  {1.5, CategorySymptom, false},
		"diarreia_8":  {1.5, CategorySymptom, false},
		"diarreia_9":  {3.0, CategorySeverity, true},
		"diarreia_10": {2.0, CategorySeverity, false},
		"diarreia_11": {2.0, CategorySeverity, false},
		"diarreia_12": {1.5, CategorySymptom, false},
		"diarreia_13": {2.5, CategorySeverity, true},
		"diarreia_14": {2.0, CategorySeverity, false},
		"diarreia_15": {3.0, CategorySeverity, true},
		"diarreia_16": {3.0, CategorySeverity, true},
		"diarreia_17": {2.5, CategorySeverity, true},
		"diarreia_18": {1.5, CategoryHistory, false},
		"diarreia_19": {1.5, CategoryHistory, false},
		"diarreia_20": {2.0, CategoryHistory, true},
		"diarreia_21": {2.0, CategoryHistory, false},
		"diarreia_22": {1.5, CategoryHistory, false},
	},
	"dor_cabeca": {
		"dor_cabeca_1":  {1.0, CategoryProfile, false},
		"dor_cabeca_2":  {2.0, CategoryProfile, false},
		"dor_cabeca_3":  {2.0, CategoryProfile, false},
		"dor_cabeca_4":  {2.0, CategoryDuration, false},
		"dor_cabeca_5":  {2.0, CategoryDuration, false},
		"dor_cabeca_6":  {2.0, CategorySeverity, false},
		"dor_cabeca_7":  {3.0, CategorySeverity, true},
		"dor_cabeca_8":  {3.0, CategorySeverity, true},
		"dor_cabeca_9":  {3.0, CategorySeverity, true},
		"dor_cabeca_10": {2.0, CategorySeverity, false},
		"dor_cabeca_11": {3.0, CategorySeverity, true},
		"dor_cabeca_12": {3.0, CategorySeverity, true},
		"dor_cabeca_13": {3.0, CategorySeverity, true},
		"dor_cabeca_14": {3.0, CategorySeverity, true},
		"dor_cabeca_15": {2.5, CategorySeverity, true},
		"dor_cabeca_16": {2.0, CategorySeverity, false},
		"dor_cabeca_17": {1.5, CategoryHistory, false},
		"dor_cabeca_18": {1.5, CategoryHistory, false},
		"dor_cabeca_19": {2.0, CategoryHistory, false},
		"dor_cabeca_20": {1.5, CategoryHistory, false},
	},
	"constipacao": {
		"constipacao_1":  {1.0, CategoryProfile, false},
		"constipacao_2":  {2.0, CategoryProfile, false},
		"constipacao_3":  {2.0, CategoryProfile, false},
		"constipacao_4":  {1.5, CategoryProfile, false},
		"constipacao_5":  {2.0, CategoryHistory, false},
		"constipacao_6":  {2.0, CategoryDuration, false},
		"constipacao_7":  {1.5, CategoryDuration, false},
		"constipacao_8":  {3.0, CategorySeverity, true},
		"constipacao_9":  {2.5, CategorySeverity, true},
		"constipacao_10": {2.0, CategorySeverity, false},
		"constipacao_11": {2.5, CategorySeverity, true},
		"constipacao_12": {2.5, CategorySeverity, true},
		"constipacao_13": {1.5, CategorySymptom, false},
		"constipacao_14": {1.5, CategorySymptom, false},
		"constipacao_15": {1.0, CategorySymptom, false},
		"constipacao_16": {1.5, CategoryHistory, false},
		"constipacao_17": {2.0, CategoryHistory, false},
		"constipacao_18": {2.0, CategoryHistory, false},
	},
	"dor_lombar": {
		"dor_lombar_1":  {1.0, CategoryProfile, false},
		"dor_lombar_2":  {2.0, CategoryProfile, false},
		"dor_lombar_3":  {2.0, CategoryProfile, false},
		"dor_lombar_4":  {2.0, CategoryDuration, false},
		"dor_lombar_5":  {1.5, CategoryDuration, false},
		"dor_lombar_6":  {1.0, CategorySymptom, false},
		"dor_lombar_7":  {2.0, CategorySeverity, false},
		"dor_lombar_8":  {3.0, CategorySeverity, true},
		"dor_lombar_9":  {3.0, CategorySeverity, true},
		"dor_lombar_10": {2.5, CategorySeverity, true},
		"dor_lombar_11": {3.0, CategorySeverity, true},
		"dor_lombar_12": {3.0, CategorySeverity, true},
		"dor_lombar_13": {3.0, CategorySeverity, true},
		"dor_lombar_14": {3.0, CategorySeverity, true},
		"dor_lombar_15": {2.5, CategorySeverity, true},
		"dor_lombar_16": {2.5, CategorySeverity, true},
		"dor_lombar_17": {2.5, CategorySeverity, true},
		"dor_lombar_18": {2.0, CategoryHistory, false},
		"dor_lombar_19": {2.0, CategoryHistory, false},
		"dor_lombar_20": {2.5, CategoryHistory, true},
		"dor_lombar_21": {1.5, CategoryHistory, false},
		"dor_lombar_22": {1.5, CategoryHistory, false},
		"dor_lombar_23": {2.5, CategoryHistory, true},
		"dor_lombar_24": {2.0, CategoryHistory, false},
		"dor_lombar_25": {1.5, CategoryHistory, false},
		"dor_lombar_26": {1.5, CategoryHistory, false},
	},
}
