package schema

import "sort"

// PValueSet holds the two-sided p-values for the four presence/metric pairings.
type PValueSet struct {
	CF float64 `json:"cf"` // presence vs change frequency
	CE float64 `json:"ce"` // presence vs change extent
	FF float64 `json:"ff"` // presence vs fault frequency
	FE float64 `json:"fe"` // presence vs fault extent
}

// SignificanceSet flags which pairings are significant at p < 0.05.
// The flags are informational only and never affect ranking.
type SignificanceSet struct {
	CF bool `json:"cf"`
	CE bool `json:"ce"`
	FF bool `json:"ff"`
	FE bool `json:"fe"`
}

// SmellScore is the full scoring record for a single smell type.
type SmellScore struct {
	InstanceCount       int             `json:"instance_count"`
	FilesWithSmell      []string        `json:"files_with_smell"`
	ChangeFrequencyRho  float64         `json:"change_frequency_rho"`
	ChangeExtentRho     float64         `json:"change_extent_rho"`
	FaultFrequencyRho   float64         `json:"fault_frequency_rho"`
	FaultExtentRho      float64         `json:"fault_extent_rho"`
	CPScore             float64         `json:"cp_score"`
	FPScore             float64         `json:"fp_score"`
	PrioritizationScore float64         `json:"prioritization_score"`
	PValues             PValueSet       `json:"p_values"`
	Significant         SignificanceSet `json:"significant"`
	DataRank            int             `json:"data_rank"`
}

// Statistics summarizes the commit history behind one analysis run.
type Statistics struct {
	TotalCommits    int     `json:"total_commits"`
	FaultyCommits   int     `json:"faulty_commits"`
	FaultPercentage float64 `json:"fault_percentage"`
	TotalFiles      int     `json:"total_files"`
	TestFiles       int     `json:"test_files"`
}

// Result is the complete output of one analysis invocation. When history is
// unavailable, Error carries the reason and Metrics stays empty.
type Result struct {
	Metrics    map[string]*SmellScore `json:"metrics"`
	Statistics *Statistics            `json:"statistics,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// Unavailable reports whether the result is the structured error form.
func (r *Result) Unavailable() bool {
	return r.Error != ""
}

// RankedSmell pairs a smell type with its score for ordered presentation.
type RankedSmell struct {
	SmellType string
	Score     *SmellScore
}

// Ranked returns the per-smell scores ordered by data rank. Rank assignment
// is strict, so the ordering is total and stable across runs.
func (r *Result) Ranked() []RankedSmell {
	ranked := make([]RankedSmell, 0, len(r.Metrics))
	for smellType, score := range r.Metrics {
		ranked = append(ranked, RankedSmell{SmellType: smellType, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Score.DataRank < ranked[j].Score.DataRank
	})
	return ranked
}
