package interview

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur04112006/Pharm-Assist/internal/platform/cache"
	"github.com/arthur04112006/Pharm-Assist/internal/scripts"
)

// Service extracts questions from the interview script corpus.
type Service struct {
	store   *scripts.Store
	weights WeightSource
	cache   *cache.LRU
	logger  zerolog.Logger
}

func NewService(store *scripts.Store, weights WeightSource, c *cache.LRU, logger zerolog.Logger) *Service {
	return &Service{store: store, weights: weights, cache: c, logger: logger}
}

// ListModules returns all available modules with their question counts.
func (s *Service) ListModules() ([]ModuleInfo, error) {
	slugs, err := s.store.List()
	if err != nil {
		return nil, err
	}

	infos := make([]ModuleInfo, 0, len(slugs))
	for _, slug := range slugs {
		qs, err := s.Questions(slug, false)
		if err != nil {
			s.logger.Warn().Str("module", slug).Err(err).Msg("skipping unextractable module")
			continue
		}
		infos = append(infos, ModuleInfo{Slug: slug, QuestionCount: len(qs)})
	}
	return infos, nil
}

// Questions extracts the questions of a module in prompt order. When
// filterKnown is set, questions answerable from the registration record
// are removed. Results are cached; the corpus is immutable for the
// lifetime of the process.
func (s *Service) Questions(module string, filterKnown bool) ([]Question, error) {
	key := fmt.Sprintf("%s|%t", module, filterKnown)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.([]Question), nil
		}
	}

	src, err := s.store.Source(module)
	if err != nil {
		return nil, err
	}

	questions, err := Extract(module, src)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		q := &questions[i]
		q.Weight, q.Category, q.Critical = s.weights.Lookup(module, q.ID, q.Text)
	}

	if filterKnown {
		questions = FilterKnown(questions)
	}

	if s.cache != nil {
		s.cache.Set(key, questions)
	}
	return questions, nil
}
