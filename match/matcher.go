package match

import (
	"math"
	"sort"
	"strings"
)

// Result holds the skill-set comparison between a resume and a job posting.
type Result struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExtraSkills     []string `json:"extra_skills"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchCount      int      `json:"match_count"`
	MissingCount    int      `json:"missing_count"`
}

// Match compares two skill lists case-insensitively. matched = resume ∩ job,
// missing = job − resume, extra = resume − job; all outputs deduplicated and
// sorted. The percentage is against the job skill set and is 0.0 when the job
// list is empty.
func Match(resumeSkills, jobSkills []string) Result {
	resumeSet := toSet(resumeSkills)
	jobSet := toSet(jobSkills)

	matched := make([]string, 0)
	missing := make([]string, 0)
	extra := make([]string, 0)

	for skill := range resumeSet {
		if _, ok := jobSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			extra = append(extra, skill)
		}
	}
	for skill := range jobSet {
		if _, ok := resumeSet[skill]; !ok {
			missing = append(missing, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	percentage := 0.0
	if len(jobSet) > 0 {
		percentage = Round2(float64(len(matched)) / float64(len(jobSet)) * 100)
	}

	return Result{
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     extra,
		MatchPercentage: percentage,
		MatchCount:      len(matched),
		MissingCount:    len(missing),
	}
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
