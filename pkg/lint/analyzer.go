package lint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

// SourceFile is one input supplied by a file source. A non-nil Err marks a
// file that could not be read or decoded; the analyzer converts it to a
// synthetic violation instead of aborting the run.
type SourceFile struct {
	File string
	SQL  string
	Err  error
}

// Source supplies the inputs for a run. Implementations live outside the
// engine (disk walkers, test fixtures); the engine itself never touches I/O.
type Source interface {
	Files(ctx context.Context) ([]SourceFile, error)
}

// Analyzer runs every active rule from the registry against SQL text.
type Analyzer struct {
	config *Config
	logger *slog.Logger
	jobs   int
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{
		config: config,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		jobs:   runtime.NumCPU(),
	}
}

// SetLogger replaces the discard logger.
func (a *Analyzer) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// SetJobs bounds the number of files analyzed concurrently by Run.
func (a *Analyzer) SetJobs(n int) {
	if n > 0 {
		a.jobs = n
	}
}

// LintText runs every active rule against one SQL text and returns the
// per-file result. The text is normalized exactly once; every rule sees the
// same normalized view. Violations appear in registry order, then in each
// rule's own discovery order.
func (a *Analyzer) LintText(sql, file string) Result {
	text := sqltext.Normalize(file, sql)

	var violations []Violation
	for _, rule := range Active() {
		if a.config.IsDisabled(rule.ID()) {
			continue
		}
		vs := a.checkRule(rule, text)
		for i := range vs {
			vs[i].File = file
		}
		violations = append(violations, vs...)
	}
	return Result{File: file, Violations: violations}
}

// checkRule invokes a single rule, converting a panic into a synthetic
// violation so one broken rule never aborts linting of a file.
func (a *Analyzer) checkRule(rule Rule, text *sqltext.Text) (vs []Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.Error("rule panicked during evaluation",
				"rule", rule.ID(), "file", text.File, "panic", rec)
			vs = []Violation{{
				RuleID:   RuleInternalError,
				Severity: SeverityError,
				Message:  fmt.Sprintf("rule %s failed: %v", rule.ID(), rec),
			}}
		}
	}()
	return rule.Check(text, a.config.GetRuleOptions(rule.ID()))
}

// Run lints every file supplied by the source and folds the results into a
// Report. Files are analyzed concurrently up to the configured job bound;
// results are re-sorted by file identifier afterwards so output does not
// depend on completion order. A per-file read error becomes a synthetic
// violation scoped to that file; only a failure of the source itself aborts
// the run.
func (a *Analyzer) Run(ctx context.Context, src Source) (*Report, error) {
	files, err := src.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inputs: %w", err)
	}

	for _, w := range LoadWarnings() {
		a.logger.Warn("rule excluded at registration", "reason", w)
	}

	report := NewReport()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Add(a.lintSourceFile(f))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.SortByFile()
	return report, nil
}

func (a *Analyzer) lintSourceFile(f SourceFile) Result {
	if f.Err != nil {
		a.logger.Warn("skipping unreadable input", "file", f.File, "err", f.Err)
		return Result{
			File: f.File,
			Violations: []Violation{{
				RuleID:   ReadError,
				Severity: SeverityError,
				File:     f.File,
				Message:  fmt.Sprintf("cannot read input: %v", f.Err),
			}},
		}
	}
	return a.LintText(f.SQL, f.File)
}
