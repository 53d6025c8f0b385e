package lint

import (
	"sort"
	"sync"
)

// Result pairs one analyzed input with its violations, in rule invocation
// order then rule-internal discovery order. A Result is built once by the
// Analyzer and never mutated afterwards.
type Result struct {
	File       string      `json:"file"`
	Violations []Violation `json:"violations"`
}

// Summary holds derived counts for a report. It is always a pure projection
// of the underlying results, recomputed on every read, so it cannot drift
// from the data.
type Summary struct {
	Total               int              `json:"total"`
	ByRule              map[string]int   `json:"by_rule"`
	BySeverity          map[Severity]int `json:"-"`
	FilesWithViolations int              `json:"files_with_violations"`
	FilesAnalyzed       int              `json:"files_analyzed"`
}

// Report accumulates results across one run. Add may be called from
// concurrent producers; all other methods are read-only snapshots.
// A Report's lifetime is a single invocation of the tool.
type Report struct {
	mu      sync.Mutex
	results []Result
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a result to the report.
func (r *Report) Add(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// Results returns a copy of the accumulated results.
func (r *Report) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Len returns the number of results in the report.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

// SortByFile orders results by file identifier. Called after concurrent
// collection so output order does not depend on completion order.
func (r *Report) SortByFile() {
	r.mu.Lock()
	defer r.mu.Unlock()
	sort.Slice(r.results, func(i, j int) bool {
		return r.results[i].File < r.results[j].File
	})
}

// Summary recomputes the derived counts from the current results.
func (r *Report) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		ByRule:        make(map[string]int),
		BySeverity:    make(map[Severity]int),
		FilesAnalyzed: len(r.results),
	}
	for _, res := range r.results {
		if len(res.Violations) > 0 {
			s.FilesWithViolations++
		}
		for _, v := range res.Violations {
			s.Total++
			s.ByRule[v.RuleID]++
			s.BySeverity[v.Severity]++
		}
	}
	return s
}

// ExitStatus returns 0 if the report holds no violations, 1 otherwise.
// This is the only externally meaningful status the engine computes.
func (r *Report) ExitStatus() int {
	if r.Summary().Total == 0 {
		return 0
	}
	return 1
}
