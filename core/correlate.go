package core

import (
	"sort"

	"github.com/TANJUMAJERIN/testsmellRank/core/gitlog"
	"github.com/TANJUMAJERIN/testsmellRank/core/stats"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// SignificanceLevel is the two-sided threshold for flagging a correlation as
// significant. The flag is informational and never affects scoring or rank.
const SignificanceLevel = 0.05

// ScoreSmells correlates the presence of each smell type against the four
// activity metrics of the qualifying test files. Smell occurrences are
// matched to vectors with lenient path comparison, since smell scanners and
// git logs rarely agree on path prefixes.
func ScoreSmells(
	vectors []schema.MetricVector,
	smells []schema.SmellOccurrence,
	files *gitlog.FileClassifier,
) map[string]*schema.SmellScore {
	byType := make(map[string][]schema.SmellOccurrence)
	for _, occ := range smells {
		byType[occ.SmellType] = append(byType[occ.SmellType], occ)
	}

	chgFreq := make([]float64, len(vectors))
	chgExt := make([]float64, len(vectors))
	faultFreq := make([]float64, len(vectors))
	faultExt := make([]float64, len(vectors))
	for i, v := range vectors {
		chgFreq[i] = v.ChgFreq
		chgExt[i] = v.ChgExt
		faultFreq[i] = v.FaultFreq
		faultExt[i] = v.FaultExt
	}

	scores := make(map[string]*schema.SmellScore, len(byType))
	for smellType, occurrences := range byType {
		presence, matched := presenceVector(vectors, occurrences, files)

		score := &schema.SmellScore{
			InstanceCount:  len(occurrences),
			FilesWithSmell: matched,
		}

		score.ChangeFrequencyRho, score.PValues.CF = correlatePair(presence, chgFreq)
		score.ChangeExtentRho, score.PValues.CE = correlatePair(presence, chgExt)
		score.FaultFrequencyRho, score.PValues.FF = correlatePair(presence, faultFreq)
		score.FaultExtentRho, score.PValues.FE = correlatePair(presence, faultExt)

		score.CPScore = score.ChangeFrequencyRho + score.ChangeExtentRho
		score.FPScore = score.FaultFrequencyRho + score.FaultExtentRho
		score.PrioritizationScore = (score.CPScore + score.FPScore) / 2

		score.Significant = schema.SignificanceSet{
			CF: score.PValues.CF < SignificanceLevel,
			CE: score.PValues.CE < SignificanceLevel,
			FF: score.PValues.FF < SignificanceLevel,
			FE: score.PValues.FE < SignificanceLevel,
		}

		scores[smellType] = score
	}
	return scores
}

// presenceVector builds the binary smell-presence vector aligned with the
// metric vectors, plus the sorted list of matched test paths.
func presenceVector(
	vectors []schema.MetricVector,
	occurrences []schema.SmellOccurrence,
	files *gitlog.FileClassifier,
) ([]float64, []string) {
	presence := make([]float64, len(vectors))
	var matched []string
	for i, v := range vectors {
		for _, occ := range occurrences {
			if files.SamePath(v.Path, occ.FilePath) {
				presence[i] = 1
				matched = append(matched, v.Path)
				break
			}
		}
	}
	sort.Strings(matched)
	return presence, matched
}

// correlatePair computes Spearman's rho and its two-sided p-value for one
// presence/metric pairing. Degenerate inputs (fewer than three pairs, or a
// constant vector on either side) yield rho 0 and p 1 rather than an error,
// so one flat metric never aborts a whole analysis.
func correlatePair(presence, metric []float64) (rho, p float64) {
	if len(presence) < 3 || !stats.HasVariance(presence) || !stats.HasVariance(metric) {
		return 0, 1
	}
	rho = stats.Spearman(presence, metric)
	p = stats.PValue(rho, len(presence))
	return rho, p
}
