// Package gitlog parses raw commit log text and classifies commits and paths.
package gitlog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// headerRe matches a commit header line: an abbreviated or full hash
// followed by a pipe. Anything else with a tab is a file-stat line and
// every other line is ignored.
var headerRe = regexp.MustCompile(`^[0-9a-f]{7,40}\|`)

// Supported author-date layouts. iso-strict comes first since that is what
// the git client requests; the plain iso layout is kept for externally
// supplied log text.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
}

// Parse turns raw "git log --numstat" output into an ordered sequence of
// commit records. Lines preceding the first header are discarded and
// malformed lines are skipped; parsing never fails.
func Parse(out []byte) []schema.CommitRecord {
	lines := strings.Split(string(out), "\n")
	commits := make([]schema.CommitRecord, 0, 64)
	var current *schema.CommitRecord

	for _, l := range lines {
		l = strings.TrimRight(l, "\r")

		if headerRe.MatchString(l) {
			if current != nil {
				commits = append(commits, *current)
			}
			rec := parseHeader(l)
			current = &rec
			continue
		}
		if !strings.Contains(l, "\t") {
			continue
		}
		if current == nil {
			continue // Stat lines before the first header are discarded
		}
		path, change, ok := parseStatLine(l)
		if ok {
			current.Files[path] = change
		}
	}
	if current != nil {
		commits = append(commits, *current)
	}
	return commits
}

// parseHeader splits a "hash|subject|date" line. The subject may itself
// contain pipes, so the hash is taken from the left and the date from the
// right before the subject is recovered from the middle.
func parseHeader(line string) schema.CommitRecord {
	rec := schema.CommitRecord{Files: make(map[string]schema.FileChange)}

	first := strings.Index(line, "|")
	rec.Hash = line[:first]
	rest := line[first+1:]

	last := strings.LastIndex(rest, "|")
	if last < 0 {
		rec.Message = rest
		return rec
	}

	if ts, ok := parseDate(rest[last+1:]); ok {
		rec.Message = rest[:last]
		rec.Timestamp = ts
	} else {
		// No parseable date; treat the whole remainder as subject.
		rec.Message = rest
	}
	return rec
}

// parseDate tries the supported layouts in order.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseStatLine parses "additions\tdeletions\tpath". Binary files report
// "-" for both counters; those parse to churn 0 while the change itself
// still counts. Anything else non-numeric marks the line malformed.
func parseStatLine(line string) (string, schema.FileChange, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return "", schema.FileChange{}, false
	}

	add, okAdd := parseCount(parts[0])
	del, okDel := parseCount(parts[1])
	path := strings.TrimSpace(parts[2])
	if !okAdd || !okDel || path == "" {
		return "", schema.FileChange{}, false
	}

	return resolveRenamePath(path), schema.FileChange{Additions: add, Deletions: del}, true
}

// parseCount converts a numstat counter to int, handling "-" as 0.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "-" {
		return 0, true
	}
	val, err := strconv.Atoi(s)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// resolveRenamePath collapses git rename notation to the post-rename path,
// so history keys stay aligned with the paths smell scanners report.
// Handles both "old => new" and "prefix/{old => new}/suffix".
func resolveRenamePath(path string) string {
	if !strings.Contains(path, " => ") {
		return path
	}

	braceStart := strings.Index(path, "{")
	braceEnd := strings.Index(path, "}")
	if braceStart >= 0 && braceEnd > braceStart {
		renamePart := path[braceStart+1 : braceEnd]
		parts := strings.SplitN(renamePart, " => ", 2)
		if len(parts) == 2 {
			resolved := path[:braceStart] + parts[1] + path[braceEnd+1:]
			return strings.ReplaceAll(resolved, "//", "/")
		}
		return path
	}

	parts := strings.SplitN(path, " => ", 2)
	return parts[1]
}
