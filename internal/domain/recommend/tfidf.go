package recommend

import (
	"math"

	"github.com/arthur04112006/Pharm-Assist/pkg/textnorm"
)

// Vectorizer is a TF-IDF model over unigrams and bigrams of the catalog
// indication texts. Building it is O(corpus); queries are a dot product
// against the L2-normalized document vectors.
type Vectorizer struct {
	vocab   map[string]int
	idf     []float64
	docVecs [][]float64
}

// ngrams tokenizes normalized text into unigrams plus adjacent bigrams.
func ngrams(text string) []string {
	words := textnorm.Words(text)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(words)*2-1)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+" "+words[i+1])
	}
	return tokens
}

// NewVectorizer fits a TF-IDF model on the given corpus. Documents that
// normalize to nothing contribute an all-zero vector.
func NewVectorizer(corpus []string) *Vectorizer {
	v := &Vectorizer{vocab: make(map[string]int)}

	tokenized := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		tokens := ngrams(doc)
		tokenized[i] = tokens
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if _, ok := v.vocab[t]; !ok {
				v.vocab[t] = len(v.vocab)
			}
			if !seen[t] {
				df[t]++
				seen[t] = true
			}
		}
	}

	n := float64(len(corpus))
	v.idf = make([]float64, len(v.vocab))
	for t, idx := range v.vocab {
		v.idf[idx] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	v.docVecs = make([][]float64, len(corpus))
	for i, tokens := range tokenized {
		v.docVecs[i] = v.vectorize(tokens)
	}
	return v
}

// VocabularySize reports how many distinct terms were indexed. Zero means
// the corpus is degenerate and TF-IDF matching cannot work.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Similarities returns the cosine similarity of the query against every
// fitted document, in document order.
func (v *Vectorizer) Similarities(query string) []float64 {
	qv := v.vectorize(ngrams(query))
	sims := make([]float64, len(v.docVecs))
	if qv == nil {
		return sims
	}
	for i, dv := range v.docVecs {
		sims[i] = dot(qv, dv)
	}
	return sims
}

// vectorize builds the L2-normalized TF-IDF vector of a token list.
func (v *Vectorizer) vectorize(tokens []string) []float64 {
	if len(tokens) == 0 || len(v.vocab) == 0 {
		return nil
	}
	vec := make([]float64, len(v.vocab))
	for _, t := range tokens {
		if idx, ok := v.vocab[t]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func dot(a, b []float64) float64 {
	if len(a) != len(b) || b == nil {
		return 0
	}
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// overlapScore is the literal fallback used when TF-IDF is degenerate:
// the fraction of query words present in the document.
func overlapScore(query, doc string) float64 {
	qw := textnorm.Words(query)
	if len(qw) == 0 {
		return 0
	}
	dw := make(map[string]bool)
	for _, w := range textnorm.Words(doc) {
		dw[w] = true
	}
	hits := 0
	for _, w := range qw {
		if dw[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(qw))
}
