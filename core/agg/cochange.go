package agg

import (
	"sort"

	"github.com/TANJUMAJERIN/testsmellRank/core/gitlog"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// BuildCoChange links each test file to the production files that changed
// with it in the same commit. Edges are directed test to production,
// deduplicated across commits, and the production lists come back sorted.
func BuildCoChange(commits []schema.CommitRecord, files *gitlog.FileClassifier) schema.CoChangeMap {
	edges := make(map[string]map[string]struct{})

	for _, commit := range commits {
		var tests, prods []string
		for path := range commit.Files {
			switch files.Classify(path) {
			case schema.TestFile:
				tests = append(tests, path)
			case schema.ProductionFile:
				prods = append(prods, path)
			}
		}
		if len(tests) == 0 || len(prods) == 0 {
			continue
		}
		for _, t := range tests {
			set, ok := edges[t]
			if !ok {
				set = make(map[string]struct{})
				edges[t] = set
			}
			for _, p := range prods {
				set[p] = struct{}{}
			}
		}
	}

	linked := make(schema.CoChangeMap, len(edges))
	for t, set := range edges {
		prods := make([]string, 0, len(set))
		for p := range set {
			prods = append(prods, p)
		}
		sort.Strings(prods)
		linked[t] = prods
	}
	return linked
}
