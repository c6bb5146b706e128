package match

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const maxFeatures = 500

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Similarity computes the TF-IDF cosine similarity between two texts as a
// percentage in [0,100], rounded to two decimals. The two documents are
// vectorized jointly: unigrams and bigrams, English stop-words removed,
// vocabulary capped at the 500 most frequent terms across both documents.
// Degenerate inputs (empty texts, no surviving terms) yield 0.0 rather than
// an error.
func Similarity(textA, textB string) float64 {
	termsA := extractTerms(textA)
	termsB := extractTerms(textB)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.0
	}

	vocab := buildVocabulary(termsA, termsB)
	if len(vocab) == 0 {
		return 0.0
	}

	vecA := vectorize(termsA, vocab)
	vecB := vectorize(termsB, vocab)

	cos := cosine(vecA, vecB)
	if math.IsNaN(cos) {
		return 0.0
	}
	return Round2(cos * 100)
}

// extractTerms tokenizes text and emits unigrams plus bigrams, with
// stop-words removed before n-gram formation.
func extractTerms(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	kept := tokens[:0]
	for _, tok := range tokens {
		if !isStopWord(tok) {
			kept = append(kept, tok)
		}
	}

	terms := make([]string, 0, len(kept)*2)
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

// buildVocabulary selects up to maxFeatures terms, ranked by total frequency
// across both documents with an alphabetical tie-break for determinism.
func buildVocabulary(termsA, termsB []string) map[string]int {
	counts := make(map[string]int)
	for _, t := range termsA {
		counts[t]++
	}
	for _, t := range termsB {
		counts[t]++
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return vocab
}

// vectorize counts term frequencies over the shared vocabulary.
func vectorize(terms []string, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for _, t := range terms {
		if idx, ok := vocab[t]; ok {
			vec[idx]++
		}
	}
	return vec
}

// cosine applies smoothed idf weighting (ln((1+n)/(1+df))+1, n=2 documents)
// to both term-frequency vectors and returns the cosine of the angle between
// them.
func cosine(vecA, vecB []float64) float64 {
	idf := make([]float64, len(vecA))
	const docs = 2.0
	for i := range vecA {
		df := 0.0
		if vecA[i] > 0 {
			df++
		}
		if vecB[i] > 0 {
			df++
		}
		idf[i] = math.Log((1+docs)/(1+df)) + 1
	}

	var dot, normA, normB float64
	for i := range vecA {
		a := vecA[i] * idf[i]
		b := vecB[i] * idf[i]
		dot += a * b
		normA += a * a
		normB += b * b
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
