package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/cli/config"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/source"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	_ "github.com/leapstack-labs/sqlint/pkg/lint/rules" // register built-in rules
)

// ErrViolationsFound signals a clean run that found violations. The driving
// program maps it to exit code 1; every other error means an internal
// failure and exits differently.
var ErrViolationsFound = errors.New("lint violations found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Path       string   // File or directory path
	Format     string   // Output format override: text, markdown, json
	Disable    []string // Rule IDs to disable
	ReportPath string   // Write the rendered report to this file as well
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <path>",
		Short: "Run lint rules on SQL files",
		Long: `Analyze SQL files for style and quality issues.

The path may be a single .sql file or a directory, which is searched
recursively for *.sql files. Every registered rule runs against every file;
violations are collected into a single report.

Output adapts to environment:
  - Terminal: styled output with colors
  - Piped/Scripted: plain text
  - JSON: machine-readable format`,
		Example: `  # Lint one file
  sqlint lint query.sql

  # Lint a directory tree
  sqlint lint ./models

  # Full violation listing, not just the summary
  sqlint lint ./models --verbose

  # Write the report to a file as well
  sqlint lint ./models --report lint-report.txt

  # Disable specific rules
  sqlint lint ./models --disable KEYWORD_CASE,SELECT_STAR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write rendered report to this path in addition to stdout")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	analyzer := lint.NewAnalyzer(buildLintConfig(cc.Cfg, opts))
	analyzer.SetLogger(cc.Logger)
	if cc.Cfg.Jobs > 0 {
		analyzer.SetJobs(cc.Cfg.Jobs)
	}

	report, err := analyzer.Run(cmd.Context(), source.New(opts.Path, cc.Logger))
	if err != nil {
		return err
	}

	verbose := cc.Cfg.Verbose
	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(buildLintOutput(report)); err != nil {
			return err
		}
	case output.ModeText:
		renderLintText(r, report, verbose)
	default:
		r.Printf("%s", plainReport(report, verbose))
	}

	if opts.ReportPath != "" {
		if err := os.WriteFile(opts.ReportPath, []byte(plainReport(report, true)), 0o644); err != nil {
			return fmt.Errorf("writing report to %s: %w", opts.ReportPath, err)
		}
	}

	if report.ExitStatus() != 0 {
		return ErrViolationsFound
	}
	return nil
}

// buildLintConfig merges project config and CLI flags into the engine config.
// CLI flags take precedence.
func buildLintConfig(cfg *config.Config, opts *LintOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}
	return lintCfg
}

func buildLintOutput(report *lint.Report) output.LintOutput {
	summary := report.Summary()
	out := output.LintOutput{
		Summary: output.LintSummary{
			FilesAnalyzed:       summary.FilesAnalyzed,
			FilesWithViolations: summary.FilesWithViolations,
			Total:               summary.Total,
			ByRule:              summary.ByRule,
			BySeverity:          make(map[string]int, len(summary.BySeverity)),
		},
	}
	for sev, n := range summary.BySeverity {
		out.Summary.BySeverity[sev.String()] = n
	}
	for _, res := range report.Results() {
		if len(res.Violations) == 0 {
			continue
		}
		fileResult := output.LintFileResult{Path: res.File}
		for _, v := range res.Violations {
			fileResult.Violations = append(fileResult.Violations, output.LintViolation{
				RuleID:   v.RuleID,
				Severity: v.Severity.String(),
				Message:  v.Message,
				Line:     v.Line,
			})
		}
		out.Files = append(out.Files, fileResult)
	}
	return out
}

func renderLintText(r *output.Renderer, report *lint.Report, verbose bool) {
	summary := report.Summary()
	if summary.Total == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return
	}

	if verbose {
		for _, res := range report.Results() {
			if len(res.Violations) == 0 {
				continue
			}
			r.Println(r.Styles().FilePath.Render(res.File))
			for _, v := range res.Violations {
				loc := "-"
				if v.Line > 0 {
					loc = fmt.Sprintf("%d", v.Line)
				}
				r.Printf("  %s  %s  %s  %s\n",
					r.Styles().Muted.Render(fmt.Sprintf("%-5s", loc)),
					severityStyle(r, v.Severity),
					r.Styles().Bold.Render(v.RuleID),
					v.Message,
				)
			}
			r.Println("")
		}
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Violations"})
	for _, info := range lint.AllRules() {
		if n := summary.ByRule[info.ID]; n > 0 {
			t.AppendRow(table.Row{info.ID, n})
		}
	}
	appendSyntheticRows(t, summary.ByRule)
	t.AppendFooter(table.Row{"Total", summary.Total})
	r.Println(t.Render())

	r.Printf("%d violations in %d of %d files\n",
		summary.Total, summary.FilesWithViolations, summary.FilesAnalyzed)
}

// appendSyntheticRows adds counts for engine-level entries (read errors,
// rule failures) that have no registered rule.
func appendSyntheticRows(t table.Writer, byRule map[string]int) {
	for _, id := range []string{lint.ReadError, lint.RuleInternalError} {
		if n := byRule[id]; n > 0 {
			t.AppendRow(table.Row{id, n})
		}
	}
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

// plainReport renders the report as unstyled text, used for markdown mode
// and the --report file. The listing is always included in report files.
func plainReport(report *lint.Report, listing bool) string {
	var b strings.Builder
	summary := report.Summary()

	if listing {
		for _, res := range report.Results() {
			for _, v := range res.Violations {
				loc := "-"
				if v.Line > 0 {
					loc = fmt.Sprintf("%d", v.Line)
				}
				fmt.Fprintf(&b, "%s:%s [%s] %s: %s\n", res.File, loc, strings.ToUpper(v.Severity.String()), v.RuleID, v.Message)
			}
		}
		if summary.Total > 0 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Summary: %d violations in %d of %d files\n",
		summary.Total, summary.FilesWithViolations, summary.FilesAnalyzed)
	for _, info := range lint.AllRules() {
		if n := summary.ByRule[info.ID]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", info.ID, n)
		}
	}
	for _, id := range []string{lint.ReadError, lint.RuleInternalError} {
		if n := summary.ByRule[id]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", id, n)
		}
	}
	return b.String()
}
