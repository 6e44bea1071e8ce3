package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// preprocess strips non-word characters to spaces, collapses whitespace,
// and lowercases.
func preprocess(text string) string {
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// tokenize splits preprocessed text into terms, dropping single-character
// tokens and stop words.
func tokenize(text string) []string {
	var tokens []string
	for _, token := range strings.Fields(text) {
		if len(token) < 2 || englishStopWords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ngrams returns the unigrams and bigrams of a token sequence. Bigrams are
// built after stop-word removal, joining surviving neighbours with a space.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// termStat accumulates corpus-wide counts for one term during vocabulary building.
type termStat struct {
	term       string
	totalCount int
	docCount   int
}

// buildVocabulary selects up to maxFeatures terms across the documents,
// ordered by total term frequency (descending) with alphabetical tie-break
// for determinism. Returns term -> vocabulary index.
func buildVocabulary(docTerms [][]string, maxFeatures int) map[string]int {
	stats := make(map[string]*termStat)
	for _, terms := range docTerms {
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			stat, ok := stats[term]
			if !ok {
				stat = &termStat{term: term}
				stats[term] = stat
			}
			stat.totalCount++
			if !seen[term] {
				stat.docCount++
				seen[term] = true
			}
		}
	}

	ordered := make([]*termStat, 0, len(stats))
	for _, stat := range stats {
		ordered = append(ordered, stat)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].totalCount != ordered[j].totalCount {
			return ordered[i].totalCount > ordered[j].totalCount
		}
		return ordered[i].term < ordered[j].term
	})

	if len(ordered) > maxFeatures {
		ordered = ordered[:maxFeatures]
	}

	vocabulary := make(map[string]int, len(ordered))
	for i, stat := range ordered {
		vocabulary[stat.term] = i
	}
	return vocabulary
}

// tfidfVectors computes l2-normalized TF-IDF vectors for the documents over
// the shared vocabulary, using smooth inverse document frequency:
// idf = ln((1+n)/(1+df)) + 1.
func tfidfVectors(docTerms [][]string, vocabulary map[string]int) [][]float64 {
	n := len(docTerms)

	docFreq := make([]int, len(vocabulary))
	for _, terms := range docTerms {
		seen := make(map[int]bool, len(terms))
		for _, term := range terms {
			if idx, ok := vocabulary[term]; ok && !seen[idx] {
				docFreq[idx]++
				seen[idx] = true
			}
		}
	}

	idf := make([]float64, len(vocabulary))
	for i, df := range docFreq {
		idf[i] = math.Log(float64(1+n)/float64(1+df)) + 1
	}

	vectors := make([][]float64, n)
	for d, terms := range docTerms {
		vector := make([]float64, len(vocabulary))
		for _, term := range terms {
			if idx, ok := vocabulary[term]; ok {
				vector[idx]++
			}
		}
		for i := range vector {
			vector[i] *= idf[i]
		}
		normalize(vector)
		vectors[d] = vector
	}
	return vectors
}

// normalize scales a vector to unit length in place; zero vectors are left as-is.
func normalize(vector []float64) {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += v * v
	}
	if sumSquares == 0 {
		return
	}
	norm := math.Sqrt(sumSquares)
	for i := range vector {
		vector[i] /= norm
	}
}

// cosine returns the cosine similarity of two equal-length vectors.
// Zero vectors yield 0.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
