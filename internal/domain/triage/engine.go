package triage

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/interview"
)

// ErrUnknownQuestion indicates an answer references a question ID that the
// module's script does not produce. The caller sent data for a different
// corpus version; surfacing this beats silently ignoring the answer.
var ErrUnknownQuestion = fmt.Errorf("unknown question id")

// Engine turns an answered interview into a ScoringResult. It is pure:
// the same module, answers and profile always produce the same result.
type Engine struct {
	registry   *Registry
	thresholds Thresholds
}

func NewEngine(registry *Registry, thresholds Thresholds) *Engine {
	return &Engine{registry: registry, thresholds: thresholds}
}

// Score weighs the given answers. questions must be the unfiltered
// extraction of the module so that every answerable ID resolves.
func (e *Engine) Score(module string, questions []interview.Question, answers map[string]interface{}, profile PatientProfile) (*ScoringResult, error) {
	byID := make(map[string]interview.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	result := &ScoringResult{
		Module: module,
		ByCategory: map[string]float64{
			CategorySymptom:  0,
			CategorySeverity: 0,
			CategoryDuration: 0,
			CategoryHistory:  0,
			CategoryProfile:  0,
		},
	}

	// Deterministic iteration: answer maps are unordered.
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q in module %s", ErrUnknownQuestion, id, module)
		}

		value := answers[id]
		aw := answerWeight(q, value)
		result.ByCategory[q.Category] += q.Weight * aw
		result.Answered++

		if q.Critical && affirmative(value) {
			result.CriticalHits = append(result.CriticalHits, id)
		}
	}

	for _, rule := range e.registry.ProfileRules(module) {
		if rule.Match(profile) {
			result.RedFlags = append(result.RedFlags, rule.Description)
		}
	}

	total := 0.0
	for _, v := range result.ByCategory {
		total += v
	}

	// Profile modifiers scale the total; the flat bonus lands on the
	// profile category only, so the breakdown flags the vulnerable
	// profile without double-counting it in the banding.
	if profile.FrailElderly {
		total *= 1.2
		result.ByCategory[CategoryProfile] += 5.0
	}
	if profile.Pregnant || profile.Lactating {
		total *= 1.1
		result.ByCategory[CategoryProfile] += 3.0
	}

	result.Total = round2(total)
	for k, v := range result.ByCategory {
		result.ByCategory[k] = round2(v)
	}

	switch {
	case len(result.CriticalHits) > 0 || len(result.RedFlags) > 0 || result.Total >= e.thresholds.Referral:
		result.Risk = RiskHigh
		result.Referral = true
	case result.Total >= e.thresholds.High:
		result.Risk = RiskHigh
	case result.Total >= e.thresholds.Moderate:
		result.Risk = RiskModerate
	default:
		result.Risk = RiskLow
	}

	result.Confidence = math.Min(1.0, float64(result.Answered)/10.0)
	return result, nil
}

// answerWeight maps a raw answer value onto the 0..2 contribution scale.
func answerWeight(q interview.Question, value interface{}) float64 {
	switch v := value.(type) {
	case bool:
		if v {
			return 1.0
		}
		return 0.0
	case float64:
		if q.Category == CategoryDuration {
			return durationWeight(v)
		}
		return magnitudeWeight(v)
	case int:
		return answerWeight(q, float64(v))
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "sim", "s", "yes", "y":
			return 1.0
		case "nao", "não", "n", "no":
			return 0.0
		}
		// Free text carries some signal but cannot be graded.
		return 0.5
	default:
		return 0.5
	}
}

// durationWeight buckets a duration in days (or weeks for weekly scripts;
// the buckets are intentionally coarse).
func durationWeight(days float64) float64 {
	switch {
	case days <= 3:
		return 0.5
	case days <= 7:
		return 1.0
	case days <= 14:
		return 1.5
	default:
		return 2.0
	}
}

// magnitudeWeight buckets counts such as episodes per day or per month.
func magnitudeWeight(n float64) float64 {
	switch {
	case n <= 3:
		return 0.5
	case n <= 10:
		return 1.0
	case n <= 20:
		return 1.5
	default:
		return 2.0
	}
}

func affirmative(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "sim", "s", "yes", "y":
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
