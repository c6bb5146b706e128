package analysis

// AnalyzeResponse is the envelope returned by POST /analyze.
type AnalyzeResponse struct {
	Success bool    `json:"success"`
	Data    *Report `json:"data"`
}

// ExtractSkillsResponse is the envelope returned by POST /extract-skills.
type ExtractSkillsResponse struct {
	Success bool     `json:"success"`
	Skills  []string `json:"skills"`
	Count   int      `json:"count"`
}

// ListRecordsResponse wraps the analysis history of a user.
type ListRecordsResponse struct {
	Success  bool     `json:"success"`
	Analyses []Record `json:"analyses"`
	Count    int      `json:"count"`
}

// RecordResponse wraps a single persisted analysis.
type RecordResponse struct {
	Success  bool    `json:"success"`
	Analysis *Record `json:"analysis"`
}
