package skills

import (
	"regexp"
	"strings"
)

// SkillPatterns is the canonical skill vocabulary. Entries are lowercase
// phrases matched with whole-word boundaries against document text.
var SkillPatterns = []string{
	// Programming Languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
	"go", "golang", "rust", "swift", "kotlin", "scala", "r", "matlab",

	// Web Development
	"html", "css", "react", "angular", "vue", "vue.js", "svelte", "next.js",
	"node.js", "express", "django", "flask", "fastapi", "spring boot",
	"asp.net", ".net", "laravel", "jquery", "bootstrap", "tailwind css",

	// Mobile Development
	"react native", "flutter", "ios", "android", "xamarin", "ionic",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
	"cassandra", "dynamodb", "firebase", "supabase", "prisma",

	// Cloud & DevOps
	"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "jenkins",
	"git", "github", "gitlab", "ci/cd", "terraform", "ansible",

	// Data Science & AI
	"machine learning", "deep learning", "artificial intelligence", "ai",
	"nlp", "natural language processing", "computer vision", "data science",
	"data analysis", "tensorflow", "pytorch", "keras", "scikit-learn",
	"pandas", "numpy", "matplotlib", "tableau", "power bi",

	// Other Technical Skills
	"api", "rest api", "graphql", "microservices", "agile", "scrum",
	"unit testing", "integration testing", "selenium", "jest", "pytest",
	"linux", "bash", "shell scripting", "excel", "powerpoint",

	// Soft Skills
	"communication", "leadership", "teamwork", "problem solving",
	"critical thinking", "time management", "project management",
}

// Abbreviations maps common shorthand to the canonical vocabulary phrase.
// Keys are matched with whole-word boundaries; the value is what gets added.
var Abbreviations = map[string]string{
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"ml":      "machine learning",
	"dl":      "deep learning",
	"k8s":     "kubernetes",
	"reactjs": "react",
	"nodejs":  "node.js",
	"vuejs":   "vue.js",
}

type skillPattern struct {
	phrase string
	re     *regexp.Regexp
}

// Vocabulary is the compiled, read-only skill phrase set. It is built once at
// process start and safe for unsynchronized concurrent reads.
type Vocabulary struct {
	patterns []skillPattern
	abbrevs  []skillPattern // re matches the abbreviation, phrase is the canonical name
	index    map[string]struct{}
}

// NewVocabulary compiles phrase and abbreviation patterns into a Vocabulary.
func NewVocabulary(phrases []string, abbreviations map[string]string) *Vocabulary {
	v := &Vocabulary{
		patterns: make([]skillPattern, 0, len(phrases)),
		abbrevs:  make([]skillPattern, 0, len(abbreviations)),
		index:    make(map[string]struct{}, len(phrases)),
	}
	for _, phrase := range phrases {
		v.patterns = append(v.patterns, skillPattern{
			phrase: phrase,
			re:     compileBoundary(phrase),
		})
		v.index[phrase] = struct{}{}
	}
	for abbr, canonical := range abbreviations {
		v.abbrevs = append(v.abbrevs, skillPattern{
			phrase: canonical,
			re:     compileBoundary(abbr),
		})
	}
	return v
}

// compileBoundary builds a whole-word/whole-phrase matcher. RE2 has no
// lookarounds, so boundaries are expressed by consuming one non-alphanumeric
// character (or the text edge) on each side. Plain \b would misbehave for
// phrases like "c++" or ".net" that begin or end with non-word characters.
func compileBoundary(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(phrase) + `(?:[^a-z0-9]|$)`)
}

// Contains reports whether the phrase is a canonical vocabulary entry.
func (v *Vocabulary) Contains(phrase string) bool {
	_, ok := v.index[strings.ToLower(strings.TrimSpace(phrase))]
	return ok
}

// Size returns the number of canonical phrases.
func (v *Vocabulary) Size() int {
	return len(v.patterns)
}

var defaultVocabulary = NewVocabulary(SkillPatterns, Abbreviations)

// DefaultVocabulary returns the process-wide compiled vocabulary.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}
