package recommend

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/catalog"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/triage"
	"github.com/arthur04112006/Pharm-Assist/internal/scripts"
	"github.com/arthur04112006/Pharm-Assist/pkg/textnorm"
)

// DefaultSimilarityThreshold is the minimum cosine similarity for a
// catalog match.
const DefaultSimilarityThreshold = 0.25

// Service assembles recommendation bundles from a scoring result.
type Service struct {
	store     *scripts.Store
	catalog   *catalog.Service
	logger    zerolog.Logger
	threshold float64
	maxBundle int
}

func NewService(store *scripts.Store, cat *catalog.Service, logger zerolog.Logger, threshold float64, maxBundle int) *Service {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	if maxBundle <= 0 {
		maxBundle = DefaultMaxBundleSize
	}
	return &Service{store: store, catalog: cat, logger: logger, threshold: threshold, maxBundle: maxBundle}
}

// Recommend builds the bundle for a scored interview. The pipeline
// degrades stepwise and reports it: TF-IDF match, then literal keyword
// overlap when the catalog vocabulary is degenerate, then the embedded
// per-module list when nothing matches at all.
func (s *Service) Recommend(ctx context.Context, module string, scoring *triage.ScoringResult, answers map[string]interface{}, profile triage.PatientProfile) (*Bundle, error) {
	if _, err := s.store.Source(module); err != nil {
		return nil, err
	}

	meds, usedEmbedded, err := s.catalog.ActiveMedications(ctx)
	if err != nil {
		return nil, err
	}

	query := buildQuery(module, answers)
	scored, degenerate := s.match(query, meds)

	degraded := usedEmbedded || degenerate

	if len(scored) == 0 {
		scored = keywordMatch(module, query, meds)
	}
	if len(scored) == 0 {
		s.logger.Warn().
			Str("module", module).
			Str("query", query).
			Msg("no semantic or keyword match, using fixed module list")
		fallback, err := catalog.FallbackForModule(module)
		if err != nil {
			return nil, err
		}
		for _, f := range fallback {
			scored = append(scored, scoredMedication{med: f.ToMedication()})
		}
		degraded = true
	}

	recs := assemble(scored, scoring, profile, s.maxBundle)

	bundle := &Bundle{
		Module:             module,
		Degraded:           degraded,
		Recommendations:    recs,
		NonPharmacological: NonPharmacological(module),
	}
	if scoring != nil {
		bundle.Risk = scoring.Risk
		bundle.Referral = scoring.Referral
	}
	for _, r := range recs {
		bundle.Display = append(bundle.Display, r.Display())
	}
	return bundle, nil
}

// match scores every medication against the query. The document is the
// combined name + active ingredient + indication, so brand and generic
// names match even when the indication text is thin. The second return
// reports a degenerate TF-IDF vocabulary.
func (s *Service) match(query string, meds []*catalog.Medication) ([]scoredMedication, bool) {
	if len(meds) == 0 {
		return nil, true
	}

	docs := make([]string, len(meds))
	for i, m := range meds {
		docs[i] = m.Name + " " + m.ActiveIngredient + " " + m.Indication
	}

	vec := NewVectorizer(docs)
	if vec.VocabularySize() == 0 {
		s.logger.Warn().Msg("degenerate catalog vocabulary, falling back to literal overlap")
		var scored []scoredMedication
		for i, m := range meds {
			if sc := overlapScore(query, docs[i]); sc >= s.threshold {
				scored = append(scored, scoredMedication{med: m, similarity: sc})
			}
		}
		return scored, true
	}

	sims := vec.Similarities(query)
	var scored []scoredMedication
	for i, sim := range sims {
		if sim >= s.threshold {
			scored = append(scored, scoredMedication{med: meds[i], similarity: sim})
		}
	}
	return scored, false
}

// keywordMatch is the literal containment stage between the vector match
// and the fixed module list: keep any medication whose name, active
// ingredient or indication contains a module keyword or a query term.
func keywordMatch(module, query string, meds []*catalog.Medication) []scoredMedication {
	keywords := append([]string{}, moduleKeywords[module]...)
	for _, w := range textnorm.Words(query) {
		keywords = append(keywords, w)
	}

	var scored []scoredMedication
	for _, m := range meds {
		haystack := textnorm.Normalize(m.Name + " " + m.ActiveIngredient + " " + m.Indication)
		for _, kw := range keywords {
			k := textnorm.Normalize(kw)
			// Short tokens (de, da, com) match almost anything.
			if len(k) < 4 {
				continue
			}
			if strings.Contains(haystack, k) {
				scored = append(scored, scoredMedication{med: m})
				break
			}
		}
	}
	return scored
}
