package skills

import (
	"context"
	"sort"
	"strings"

	"github.com/skilllens/skilllens/pkg/logx"
)

// Extractor finds vocabulary skills in free text. Instances are read-only
// after construction and safe for concurrent use.
type Extractor struct {
	vocab     *Vocabulary
	annotator Annotator
}

// NewExtractor creates an extractor. A nil annotator disables NLP refinement.
func NewExtractor(vocab *Vocabulary, annotator Annotator) *Extractor {
	if annotator == nil {
		annotator = NewNoopAnnotator()
	}
	return &Extractor{
		vocab:     vocab,
		annotator: annotator,
	}
}

// Extract returns the sorted set of vocabulary skills present in text.
// Matching is case-insensitive and respects word boundaries, so "java" is not
// found inside "javascript". Abbreviations expand to their canonical phrase.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	found := make(map[string]struct{})
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	lower := strings.ToLower(text)

	// Pass 1: whole-phrase pattern matching against the vocabulary.
	for _, p := range e.vocab.patterns {
		if p.re.MatchString(lower) {
			found[p.phrase] = struct{}{}
		}
	}

	// Pass 2: best-effort NLP refinement. Annotator trouble is logged and
	// swallowed; extraction still succeeds on pattern matches alone.
	if ann, err := e.annotator.Annotate(ctx, text); err != nil {
		logx.Debugf("annotator unavailable, skipping NLP refinement: %v", err)
	} else if ann != nil {
		e.refine(lower, ann, found)
	}

	// Pass 3: abbreviation expansion.
	for _, a := range e.vocab.abbrevs {
		if a.re.MatchString(lower) {
			found[a.phrase] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}

// refine cross-references annotator output against the vocabulary. Containment
// checks keep the whole-word discipline of the primary pass: a phrase counts
// as containing a skill only when the skill appears on word boundaries inside
// it, so "javascript framework" matches "javascript" but never "java".
func (e *Extractor) refine(lowerText string, ann *Annotation, found map[string]struct{}) {
	for _, chunk := range ann.NounPhrases {
		phrase := strings.ToLower(strings.TrimSpace(chunk))
		if len(phrase) <= 2 || !strings.Contains(lowerText, phrase) {
			continue
		}
		for _, p := range e.vocab.patterns {
			if p.re.MatchString(phrase) {
				found[p.phrase] = struct{}{}
				continue
			}
			// The phrase itself may be the shorter side ("spring" inside
			// "spring boot"); check it against the skill on boundaries too.
			if len(phrase) < len(p.phrase) && compileBoundary(phrase).MatchString(p.phrase) {
				found[p.phrase] = struct{}{}
			}
		}
	}

	for _, ent := range ann.Entities {
		switch ent.Label {
		case EntityLabelProduct, EntityLabelOrg, EntityLabelTech:
		default:
			continue
		}
		name := strings.ToLower(strings.TrimSpace(ent.Text))
		if e.vocab.Contains(name) {
			found[name] = struct{}{}
		}
	}
}
