package core

import (
	"sort"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// AssignRanks orders smell types by prioritization score descending, with
// ties broken by smell type ascending so the ordering is total. Ranks are
// assigned strictly from 1 to n with no gaps and no shared ranks.
func AssignRanks(scores map[string]*schema.SmellScore) {
	types := make([]string, 0, len(scores))
	for smellType := range scores {
		types = append(types, smellType)
	}
	sort.Slice(types, func(i, j int) bool {
		si, sj := scores[types[i]], scores[types[j]]
		if si.PrioritizationScore != sj.PrioritizationScore {
			return si.PrioritizationScore > sj.PrioritizationScore
		}
		return types[i] < types[j]
	})
	for i, smellType := range types {
		scores[smellType].DataRank = i + 1
	}
}
