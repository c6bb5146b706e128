package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_PriorityOrdering(t *testing.T) {
	recs := Recommend([]string{"typescript", "python", "unknown-thing"})

	require.Len(t, recs, 3)
	assert.Equal(t, "python", recs[0].Skill) // high beats medium
	// Both medium; stable sort keeps input order.
	assert.Equal(t, "typescript", recs[1].Skill)
	assert.Equal(t, "unknown-thing", recs[2].Skill)
}

func TestRecommend_KnownSkill(t *testing.T) {
	recs := Recommend([]string{"python"})

	require.Len(t, recs, 1)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.NotEmpty(t, recs[0].Courses)
	for _, c := range recs[0].Courses {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Platform)
		assert.NotEmpty(t, c.URL)
	}
}

func TestRecommend_CaseInsensitiveLookup(t *testing.T) {
	recs := Recommend([]string{"Machine Learning"})

	require.Len(t, recs, 1)
	assert.Equal(t, "Machine Learning", recs[0].Skill)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
}

func TestRecommend_UnknownSkillFallback(t *testing.T) {
	recs := Recommend([]string{"quantum basket weaving"})

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, PriorityMedium, rec.Priority)
	require.Len(t, rec.Courses, 2)
	assert.Equal(t, "YouTube", rec.Courses[0].Platform)
	assert.Contains(t, rec.Courses[0].URL, "quantum+basket+weaving")
	assert.Equal(t, "Udemy", rec.Courses[1].Platform)
	assert.Contains(t, rec.Courses[1].URL, "quantum+basket+weaving")
}

func TestRecommend_Empty(t *testing.T) {
	assert.Empty(t, Recommend(nil))
	assert.Empty(t, Recommend([]string{}))
}

func TestBuildPath_Buckets(t *testing.T) {
	p := BuildPath([]string{"python", "typescript", "redis", "unheard-of"})

	assert.Equal(t, []string{"python"}, p.ImmediateFocus)
	assert.Equal(t, []string{"typescript", "unheard-of"}, p.ShortTerm)
	assert.Equal(t, []string{"redis"}, p.LongTerm)
	assert.Equal(t, "16 weeks", p.EstimatedTimeline)
	assert.Equal(t, 4, p.TotalSkills)
}

func TestBuildPath_Empty(t *testing.T) {
	p := BuildPath(nil)

	assert.Empty(t, p.ImmediateFocus)
	assert.Empty(t, p.ShortTerm)
	assert.Empty(t, p.LongTerm)
	assert.Equal(t, "0 weeks", p.EstimatedTimeline)
	assert.Equal(t, 0, p.TotalSkills)
}

func TestResources_TableShape(t *testing.T) {
	for skill, res := range Resources {
		t.Run(skill, func(t *testing.T) {
			assert.Contains(t, []string{PriorityHigh, PriorityMedium, PriorityLow}, res.Priority)
			assert.NotEmpty(t, res.Courses)
		})
	}
}
