// Package match resolves a user-supplied token against a task list, either
// as a 0-based index or as an exact/fuzzy description lookup.
package match

import (
	"strconv"
	"strings"

	"github.com/adrg/strutil/metrics"

	"github.com/idilsaglam/ttd/internal/model"
)

// Candidate is the best approximate description match for a query.
type Candidate struct {
	Index       int
	Description string
	Score       float64 // normalized 0..1
}

// Result is the outcome of a lookup.
type Result struct {
	Index      int        // resolved position, valid only when Found
	Found      bool       // a task was resolved
	Suggestion *Candidate // approximate match info, resolved or not
	ByIndex    bool       // the query was syntactically an index
}

var jaroWinkler = metrics.NewJaroWinkler()

// Find resolves query against tasks under the given similarity threshold and
// strictness policy.
//
// Digit-only queries (a leading '-' included) go down the index path; the
// unsigned parse means negative-looking tokens never resolve. Name queries
// check case-insensitive equality first in both modes. Past that the modes
// diverge on purpose: strict mode only ever reports the best above-threshold
// candidate as a suggestion, non-strict mode resolves it directly.
func Find(tasks []model.Task, query string, threshold float64, strict bool) Result {
	if isIndexToken(query) {
		idx, err := strconv.ParseUint(query, 10, 64)
		if err == nil && int(idx) < len(tasks) {
			return Result{Index: int(idx), Found: true, ByIndex: true}
		}
		return Result{ByIndex: true}
	}

	q := strings.ToLower(query)
	if i := model.FindExact(tasks, q); i >= 0 {
		return Result{Index: i, Found: true}
	}

	best := Candidate{Index: -1}
	for i, t := range tasks {
		score := jaroWinkler.Compare(strings.ToLower(t.Description), q)
		if score > best.Score {
			best = Candidate{Index: i, Description: t.Description, Score: score}
		}
	}
	if best.Index < 0 {
		return Result{}
	}

	if strict {
		if best.Score > threshold {
			return Result{Suggestion: &best}
		}
		return Result{}
	}
	if best.Score >= threshold {
		return Result{Index: best.Index, Found: true, Suggestion: &best}
	}
	// Below threshold: surface the closest candidate so callers can hint at
	// it, without resolving.
	return Result{Suggestion: &best}
}

// isIndexToken reports whether the query is all ASCII digits, optionally
// preceded by a single '-'. Degenerate tokens ("", "-") still count: they
// take the index path and fail there, reported as an index miss rather than
// a name-search miss.
func isIndexToken(s string) bool {
	body := s
	if strings.HasPrefix(s, "-") {
		body = s[1:]
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return true
}
