package learning

import (
	"fmt"
	"sort"
	"strings"
)

// Recommendation pairs a missing skill with its learning resources.
type Recommendation struct {
	Skill    string   `json:"skill"`
	Priority string   `json:"priority"`
	Courses  []Course `json:"courses"`
}

// Path groups missing skills into a phased learning plan.
type Path struct {
	ImmediateFocus    []string `json:"immediate_focus"`
	ShortTerm         []string `json:"short_term"`
	LongTerm          []string `json:"long_term"`
	EstimatedTimeline string   `json:"estimated_timeline"`
	TotalSkills       int      `json:"total_skills"`
}

var priorityRank = map[string]int{
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// Recommend returns learning resources for each missing skill, ordered by
// priority tier (high first). Skills absent from the resource table get a
// generated search-link fallback at medium priority. Ties keep input order.
func Recommend(missingSkills []string) []Recommendation {
	recs := make([]Recommendation, 0, len(missingSkills))
	for _, skill := range missingSkills {
		if res, ok := Resources[strings.ToLower(skill)]; ok {
			recs = append(recs, Recommendation{
				Skill:    skill,
				Priority: res.Priority,
				Courses:  res.Courses,
			})
			continue
		}
		recs = append(recs, fallbackRecommendation(skill))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return rankOf(recs[i].Priority) < rankOf(recs[j].Priority)
	})
	return recs
}

// fallbackRecommendation builds generic search links for a skill the table
// does not know about.
func fallbackRecommendation(skill string) Recommendation {
	query := strings.ReplaceAll(skill, " ", "+")
	return Recommendation{
		Skill:    skill,
		Priority: PriorityMedium,
		Courses: []Course{
			{
				Name:     fmt.Sprintf("Search '%s' tutorials", skill),
				Platform: "YouTube",
				URL:      fmt.Sprintf("https://www.youtube.com/results?search_query=%s+tutorial", query),
			},
			{
				Name:     fmt.Sprintf("Learn %s", skill),
				Platform: "Udemy",
				URL:      fmt.Sprintf("https://www.udemy.com/courses/search/?q=%s", query),
			},
		},
	}
}

func rankOf(priority string) int {
	if rank, ok := priorityRank[priority]; ok {
		return rank
	}
	return priorityRank[PriorityLow]
}

// BuildPath partitions missing skills into immediate/short/long-term buckets
// by priority (unknown skills land in short_term) and estimates a timeline of
// four weeks per skill.
func BuildPath(missingSkills []string) Path {
	p := Path{
		ImmediateFocus: []string{},
		ShortTerm:      []string{},
		LongTerm:       []string{},
		TotalSkills:    len(missingSkills),
	}
	for _, skill := range missingSkills {
		priority := PriorityMedium
		if res, ok := Resources[strings.ToLower(skill)]; ok {
			priority = res.Priority
		}
		switch priority {
		case PriorityHigh:
			p.ImmediateFocus = append(p.ImmediateFocus, skill)
		case PriorityLow:
			p.LongTerm = append(p.LongTerm, skill)
		default:
			p.ShortTerm = append(p.ShortTerm, skill)
		}
	}
	p.EstimatedTimeline = fmt.Sprintf("%d weeks", 4*len(missingSkills))
	return p
}
