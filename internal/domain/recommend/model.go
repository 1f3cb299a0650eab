package recommend

import "fmt"

// Recommendation is one entry of the assembled bundle. Referral entries
// have no medication fields.
type Recommendation struct {
	Name             string   `json:"name"`
	ActiveIngredient string   `json:"active_ingredient,omitempty"`
	TherapeuticClass string   `json:"therapeutic_class,omitempty"`
	Indication       string   `json:"indication,omitempty"`
	Posology         string   `json:"posology,omitempty"`
	Priority         int      `json:"priority"`
	Similarity       float64  `json:"similarity,omitempty"`
	Notes            []string `json:"notes,omitempty"`
	Referral         bool     `json:"referral,omitempty"`
}

// Display renders the entry in the counter display format.
func (r Recommendation) Display() string {
	if r.Referral {
		s := r.Name
		for _, n := range r.Notes {
			s += " | " + n
		}
		return s
	}
	s := fmt.Sprintf("%s (%s) - %s | Posologia: %s", r.Name, r.ActiveIngredient, r.Indication, r.Posology)
	for _, n := range r.Notes {
		s += " | " + n
	}
	return s
}

// Bundle is the full recommendation response.
type Bundle struct {
	Module             string           `json:"module"`
	Risk               string           `json:"risk"`
	Referral           bool             `json:"referral"`
	Degraded           bool             `json:"degraded"`
	Recommendations    []Recommendation `json:"recommendations"`
	NonPharmacological []string         `json:"non_pharmacological"`
	Display            []string         `json:"display"`
}
