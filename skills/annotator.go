package skills

import "context"

// Entity is a named entity recognized in text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotation holds NLP-derived spans used to widen skill detection.
type Annotation struct {
	NounPhrases []string `json:"noun_phrases"`
	Entities    []Entity `json:"entities"`
}

// Annotator extracts noun phrases and named entities from text. The extractor
// treats it as best-effort: an error or empty annotation never fails
// extraction.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Annotation, error)
}

// Entity labels considered technology-like by the extractor.
const (
	EntityLabelProduct = "PRODUCT"
	EntityLabelOrg     = "ORG"
	EntityLabelTech    = "TECH"
)

// NoopAnnotator is the fallback when no NLP model is configured.
type NoopAnnotator struct{}

func NewNoopAnnotator() *NoopAnnotator { return &NoopAnnotator{} }

func (NoopAnnotator) Annotate(ctx context.Context, text string) (*Annotation, error) {
	return &Annotation{}, nil
}
