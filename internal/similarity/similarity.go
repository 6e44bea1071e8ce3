// Package similarity computes a normalized lexical similarity score between
// two documents using a joint TF-IDF term-weight space and cosine similarity.
package similarity

import (
	"log"
)

const (
	// maxFeatures caps the retained vocabulary, keeping the vector space
	// bounded on very long documents.
	maxFeatures = 1000

	// DefaultScore is returned when the vector space degenerates (e.g. both
	// texts empty after preprocessing). Text similarity is an auxiliary
	// signal, so availability wins over strictness here.
	DefaultScore = 0.3
)

// Engine computes text similarity scores. The zero-cost constructor exists
// so callers can share one engine and tests can tweak limits.
type Engine struct {
	maxFeatures int
}

// NewEngine returns an Engine with the standard vocabulary cap.
func NewEngine() *Engine {
	return &Engine{maxFeatures: maxFeatures}
}

// Similarity returns the cosine similarity of the two texts in [0,1].
// The two documents form their own corpus: term weights are term frequency
// scaled by smooth inverse document frequency over exactly these two
// documents, over unigrams and bigrams with stop words removed.
//
// A degenerate vocabulary is not an error: the engine logs a warning and
// falls back to DefaultScore.
func (e *Engine) Similarity(textA, textB string) float64 {
	docTerms := [][]string{
		ngrams(tokenize(preprocess(textA))),
		ngrams(tokenize(preprocess(textB))),
	}

	vocabulary := buildVocabulary(docTerms, e.maxFeatures)
	if len(vocabulary) == 0 {
		log.Printf("similarity: empty vocabulary after preprocessing, using default score %.2f", DefaultScore)
		return DefaultScore
	}

	vectors := tfidfVectors(docTerms, vocabulary)

	score := cosine(vectors[0], vectors[1])
	if score < 0 {
		// Guards floating-point underflow only; weights are non-negative.
		score = 0
	}
	return score
}
