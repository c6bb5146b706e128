package match

// Weighting of the combined score: skill overlap dominates, raw text
// similarity refines.
const (
	skillWeight      = 0.6
	similarityWeight = 0.4
)

// Score levels and their advice strings.
const (
	LevelExcellent = "Excellent Match"
	LevelGood      = "Good Match"
	LevelFair      = "Fair Match"
	LevelPoor      = "Poor Match"
)

// AdvancedResult combines skill overlap and text similarity into one score.
type AdvancedResult struct {
	OverallScore        float64  `json:"overall_score"`
	SkillMatchScore     float64  `json:"skill_match_score"`
	TextSimilarityScore float64  `json:"text_similarity_score"`
	MatchLevel          string   `json:"match_level"`
	MatchedSkills       []string `json:"matched_skills"`
	MissingSkills       []string `json:"missing_skills"`
	Recommendation      string   `json:"recommendation"`
}

// AdvancedScore weighs the skill match percentage (0.6) against TF-IDF text
// similarity (0.4) and maps the result to a qualitative tier.
func AdvancedScore(resumeSkills, jobSkills []string, resumeText, jobText string) AdvancedResult {
	skillMatch := Match(resumeSkills, jobSkills)
	textSim := Similarity(resumeText, jobText)

	overall := Round2(skillMatch.MatchPercentage*skillWeight + textSim*similarityWeight)

	return AdvancedResult{
		OverallScore:        overall,
		SkillMatchScore:     skillMatch.MatchPercentage,
		TextSimilarityScore: textSim,
		MatchLevel:          levelFor(overall),
		MatchedSkills:       skillMatch.MatchedSkills,
		MissingSkills:       skillMatch.MissingSkills,
		Recommendation:      adviceFor(overall),
	}
}

func levelFor(score float64) string {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelPoor
	}
}

func adviceFor(score float64) string {
	switch {
	case score >= 80:
		return "Your profile is an excellent match! Apply with confidence."
	case score >= 60:
		return "Good match! Consider highlighting your matching skills in your application."
	case score >= 40:
		return "Fair match. Focus on learning the missing skills before applying."
	default:
		return "Consider gaining more relevant skills before applying to this role."
	}
}
