package recommend

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/arthur04112006/Pharm-Assist/pkg/textnorm"
)

//go:embed data/synonyms.json
var synonymsJSON []byte

var (
	synonymsOnce sync.Once
	synonymsMap  map[string][]string
	synonymsErr  error
)

func synonyms() (map[string][]string, error) {
	synonymsOnce.Do(func() {
		raw := make(map[string][]string)
		if err := json.Unmarshal(synonymsJSON, &raw); err != nil {
			synonymsErr = fmt.Errorf("decode synonyms: %w", err)
			return
		}
		// Normalize keys so lookups survive accents in the query.
		synonymsMap = make(map[string][]string, len(raw))
		for k, vs := range raw {
			synonymsMap[textnorm.Normalize(k)] = vs
		}
	})
	return synonymsMap, synonymsErr
}

// expandQuery appends the synonyms of every term (and every known
// multi-word phrase) found in the query. Unknown terms pass through.
func expandQuery(query string) string {
	dict, err := synonyms()
	if err != nil {
		return query
	}

	normalized := textnorm.Normalize(query)

	// Sorted phrase walk keeps the expanded query, and therefore the
	// bigrams fed to the vectorizer, deterministic.
	phrases := make([]string, 0, len(dict))
	for phrase := range dict {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)

	var extra []string
	for _, phrase := range phrases {
		if strings.Contains(normalized, phrase) {
			extra = append(extra, dict[phrase]...)
		}
	}
	if len(extra) == 0 {
		return query
	}
	return query + " " + strings.Join(extra, " ")
}
