package match

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalText(t *testing.T) {
	text := "Experienced backend engineer. Designed microservices in Go and Python, " +
		"operated PostgreSQL and Redis clusters, deployed with Docker and Kubernetes."

	got := Similarity(text, text)
	assert.InDelta(t, 100.0, got, 0.01)
}

func TestSimilarity_EmptyTexts(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("some content here", ""))
	assert.Equal(t, 0.0, Similarity("", "some content here"))
}

func TestSimilarity_StopWordsOnly(t *testing.T) {
	// Everything filters out, leaving an empty vocabulary.
	assert.Equal(t, 0.0, Similarity("the and of to", "a an in on"))
}

func TestSimilarity_DisjointTexts(t *testing.T) {
	got := Similarity(
		"gardening landscaping flowers botany horticulture",
		"quantum physics particle accelerator measurements",
	)
	assert.Equal(t, 0.0, got)
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	got := Similarity(
		"python developer with docker experience and sql databases",
		"looking for python developer familiar with kubernetes and sql",
	)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 100.0)
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"alpha beta gamma", "alpha beta gamma"},
		{"alpha beta", "gamma delta"},
		{"mixed content words overlap partly", "content words differ mostly here"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "python engineer cloud infrastructure terraform"
	b := "senior python developer aws cloud background"

	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}

func TestExtractTerms_Bigrams(t *testing.T) {
	terms := extractTerms("machine learning models")

	assert.Contains(t, terms, "machine")
	assert.Contains(t, terms, "learning")
	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "learning models")
}

func TestExtractTerms_StopWordsRemovedBeforeBigrams(t *testing.T) {
	terms := extractTerms("experience with python")

	assert.Contains(t, terms, "experience python")
	assert.NotContains(t, terms, "with python")
}

func TestExtractTerms_ShortTokensDropped(t *testing.T) {
	terms := extractTerms("c is x y z golang")

	assert.Contains(t, terms, "golang")
	assert.NotContains(t, terms, "c")
	assert.NotContains(t, terms, "x")
}

func TestBuildVocabulary_CapsFeatures(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 800; i++ {
		fmt.Fprintf(&sb, "term%d ", i)
	}
	termsA := extractTerms(sb.String())
	termsB := extractTerms("unrelated words entirely")

	vocab := buildVocabulary(termsA, termsB)
	assert.LessOrEqual(t, len(vocab), maxFeatures)
}
