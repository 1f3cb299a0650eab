package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
)

//go:embed data/medications.json
var fallbackJSON []byte

// FallbackMedication is one entry of the embedded catalog used when the
// database table is empty or unavailable.
type FallbackMedication struct {
	Module           string `json:"module"`
	Name             string `json:"name"`
	ActiveIngredient string `json:"active_ingredient"`
	TherapeuticClass string `json:"therapeutic_class"`
	Indication       string `json:"indication"`
	Contraindication string `json:"contraindication,omitempty"`
	Priority         int    `json:"priority"`
}

var (
	fallbackOnce sync.Once
	fallbackMeds []FallbackMedication
	fallbackErr  error
)

// Fallback returns the embedded catalog. Decoded once per process.
func Fallback() ([]FallbackMedication, error) {
	fallbackOnce.Do(func() {
		if err := json.Unmarshal(fallbackJSON, &fallbackMeds); err != nil {
			fallbackErr = fmt.Errorf("decode embedded catalog: %w", err)
		}
	})
	return fallbackMeds, fallbackErr
}

// FallbackForModule returns the embedded entries for one module.
func FallbackForModule(module string) ([]FallbackMedication, error) {
	all, err := Fallback()
	if err != nil {
		return nil, err
	}
	var out []FallbackMedication
	for _, m := range all {
		if m.Module == module {
			out = append(out, m)
		}
	}
	return out, nil
}

// ToMedication converts a fallback entry to a catalog Medication.
func (f FallbackMedication) ToMedication() *Medication {
	m := &Medication{
		Name:             f.Name,
		ActiveIngredient: f.ActiveIngredient,
		TherapeuticClass: f.TherapeuticClass,
		Indication:       f.Indication,
		Priority:         f.Priority,
		Active:           true,
	}
	if f.Contraindication != "" {
		contra := f.Contraindication
		m.Contraindication = &contra
	}
	return m
}
