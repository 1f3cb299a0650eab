package recommend

import (
	"math"
	"testing"
)

func TestNewVectorizer_VocabularySize(t *testing.T) {
	vec := NewVectorizer([]string{"tosse seca", "tosse produtiva com catarro"})
	if vec.VocabularySize() == 0 {
		t.Fatal("expected non-empty vocabulary")
	}

	empty := NewVectorizer([]string{"", "   "})
	if empty.VocabularySize() != 0 {
		t.Errorf("expected degenerate vocabulary, got %d terms", empty.VocabularySize())
	}
}

func TestVectorizer_Similarities(t *testing.T) {
	corpus := []string{
		"Tosse seca e irritativa",
		"Diarreia aguda e desconforto intestinal",
		"Febre e dor no corpo",
	}
	vec := NewVectorizer(corpus)

	sims := vec.Similarities("tosse seca")
	if len(sims) != len(corpus) {
		t.Fatalf("expected %d similarities, got %d", len(corpus), len(sims))
	}
	if sims[0] <= sims[1] || sims[0] <= sims[2] {
		t.Errorf("cough document should score highest: %v", sims)
	}
	if sims[0] <= 0 {
		t.Errorf("expected positive similarity for matching document, got %f", sims[0])
	}
}

func TestVectorizer_Similarities_SelfMatch(t *testing.T) {
	corpus := []string{"dor lombar muscular"}
	vec := NewVectorizer(corpus)

	sims := vec.Similarities("dor lombar muscular")
	if math.Abs(sims[0]-1.0) > 1e-9 {
		t.Errorf("identical query should have cosine 1, got %f", sims[0])
	}
}

func TestVectorizer_Similarities_NoOverlap(t *testing.T) {
	vec := NewVectorizer([]string{"tosse seca"})

	sims := vec.Similarities("quadro completamente diferente")
	if sims[0] != 0 {
		t.Errorf("expected zero similarity, got %f", sims[0])
	}

	sims = vec.Similarities("")
	if sims[0] != 0 {
		t.Errorf("empty query should score zero, got %f", sims[0])
	}
}

func TestVectorizer_AccentInsensitive(t *testing.T) {
	vec := NewVectorizer([]string{"Constipação intestinal"})

	sims := vec.Similarities("constipacao")
	if sims[0] <= 0 {
		t.Errorf("accented and unaccented forms should match, got %f", sims[0])
	}
}

func TestOverlapScore(t *testing.T) {
	tests := []struct {
		query string
		doc   string
		want  float64
	}{
		{"tosse seca", "tosse seca e irritativa", 1.0},
		{"tosse seca", "diarreia aguda", 0.0},
		{"tosse com catarro", "tosse produtiva", 1.0 / 3.0},
		{"", "tosse", 0.0},
	}
	for _, tt := range tests {
		got := overlapScore(tt.query, tt.doc)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("overlapScore(%q, %q) = %f, want %f", tt.query, tt.doc, got, tt.want)
		}
	}
}
