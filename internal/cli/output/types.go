package output

// LintOutput is the machine-readable shape of a completed lint run.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// LintSummary carries the derived counts of a run.
type LintSummary struct {
	FilesAnalyzed       int            `json:"files_analyzed"`
	FilesWithViolations int            `json:"files_with_violations"`
	Total               int            `json:"total_violations"`
	ByRule              map[string]int `json:"by_rule,omitempty"`
	BySeverity          map[string]int `json:"by_severity,omitempty"`
}

// LintFileResult holds the violations for one analyzed file.
type LintFileResult struct {
	Path       string          `json:"path"`
	Violations []LintViolation `json:"violations"`
}

// LintViolation is one reported issue.
type LintViolation struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
}
