package recommend

import (
	"sort"
	"strings"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/catalog"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/triage"
	"github.com/arthur04112006/Pharm-Assist/pkg/textnorm"
)

// DefaultMaxBundleSize caps the assembled bundle.
const DefaultMaxBundleSize = 12

const maxPriority = 5

// Ingredients demoted per profile. Matching is on the normalized active
// ingredient, substring, so "Ácido acetilsalicílico" matches "acido".
var (
	pregnancyRisk = []string{"ibuprofeno", "aspirina", "acido acetilsalicilico", "naproxeno", "diclofenaco"}
	frailRisk     = []string{"dipirona", "tramadol"}
	childRisk     = []string{"aspirina", "acido acetilsalicilico", "tramadol"}
)

const (
	notePregnancy = "Cautela em gestantes - consultar médico"
	noteFrail     = "Reduzir dose em idosos"
	noteChild     = "Contraindicado em crianças"
	noteUrgent    = "Avaliação urgente recomendada"
)

type scoredMedication struct {
	med        *catalog.Medication
	similarity float64
}

// assemble builds the final recommendation list: profile adjustments,
// referral entries, deterministic ordering and the bundle cap.
func assemble(scored []scoredMedication, scoring *triage.ScoringResult, profile triage.PatientProfile, maxSize int) []Recommendation {
	if maxSize <= 0 {
		maxSize = DefaultMaxBundleSize
	}

	recs := make([]Recommendation, 0, len(scored))
	for _, sm := range scored {
		m := sm.med
		rec := Recommendation{
			Name:             m.Name,
			ActiveIngredient: m.ActiveIngredient,
			TherapeuticClass: m.TherapeuticClass,
			Indication:       m.Indication,
			Posology:         posologyFor(m.TherapeuticClass),
			Priority:         m.Priority,
			Similarity:       sm.similarity,
		}
		applyProfileAdjustments(&rec, profile)
		recs = append(recs, rec)
	}

	// Priority first, then strongest match, then name for a stable order.
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority < recs[j].Priority
		}
		if recs[i].Similarity != recs[j].Similarity {
			return recs[i].Similarity > recs[j].Similarity
		}
		return recs[i].Name < recs[j].Name
	})

	if scoring != nil && scoring.Referral {
		referral := Recommendation{
			Name:     "Encaminhamento médico necessário",
			Referral: true,
		}
		if scoring.ByCategory[triage.CategorySeverity] > 10.0 {
			referral.Notes = append(referral.Notes, noteUrgent)
		}
		recs = append([]Recommendation{referral}, recs...)
	}

	if len(recs) > maxSize {
		recs = recs[:maxSize]
	}
	return recs
}

// applyProfileAdjustments demotes medications contraindicated for the
// patient and attaches the counter note. Demotion rather than removal:
// the pharmacist sees the option and the caveat.
func applyProfileAdjustments(rec *Recommendation, profile triage.PatientProfile) {
	ingredient := textnorm.Normalize(rec.ActiveIngredient)

	if profile.Pregnant || profile.Lactating {
		if matchesAny(ingredient, pregnancyRisk) {
			rec.Priority++
			rec.Notes = append(rec.Notes, notePregnancy)
		}
	}
	if profile.FrailElderly {
		if matchesAny(ingredient, frailRisk) {
			rec.Priority++
			rec.Notes = append(rec.Notes, noteFrail)
		}
	}
	// Infants registered with months only have AgeYears == 0, so either
	// field can place the patient under twelve.
	underTwelve := (profile.AgeYears > 0 && profile.AgeYears < 12) ||
		(profile.AgeMonths > 0 && profile.AgeMonths < 144)
	if underTwelve {
		if matchesAny(ingredient, childRisk) {
			rec.Priority += 2
			rec.Notes = append(rec.Notes, noteChild)
		}
	}

	if rec.Priority > maxPriority {
		rec.Priority = maxPriority
	}
}

func matchesAny(ingredient string, list []string) bool {
	for _, item := range list {
		if strings.Contains(ingredient, item) {
			return true
		}
	}
	return false
}
