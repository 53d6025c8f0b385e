package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	_ "github.com/leapstack-labs/sqlint/pkg/lint/rules" // register built-in rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all registered lint rules with their metadata.

Rules are listed in ID order, the same order they run in. Rules that failed
registration are reported as warnings on stderr.`,
		Example: `  # List all rules
  sqlint rules

  # Show details for a specific rule
  sqlint rules KEYWORD_CASE

  # List rules in the convention group
  sqlint rules --group convention

  # Output as JSON
  sqlint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := lint.AllRules()
	if opts.Group != "" {
		var filtered []lint.RuleInfo
		for _, info := range rules {
			if info.Group == opts.Group {
				filtered = append(filtered, info)
			}
		}
		rules = filtered
	}

	for _, w := range lint.LoadWarnings() {
		r.Errorf("warning: %s\n", w)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rules)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Group", "Severity", "Description"})
	for _, info := range rules {
		t.AppendRow(table.Row{info.ID, info.Group, info.Severity.String(), info.Description})
	}
	r.Println(t.Render())
	r.Printf("%d rules registered\n", len(rules))
	return nil
}

func showRule(cmd *cobra.Command, id string, opts *RulesOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetByID(id)
	if !ok {
		return fmt.Errorf("unknown rule: %s", id)
	}
	info := lint.GetRuleInfo(rule)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Println(r.Styles().Bold.Render(info.ID))
	r.Printf("Name:        %s\n", info.Name)
	r.Printf("Group:       %s\n", info.Group)
	r.Printf("Severity:    %s\n", info.Severity)
	r.Printf("Description: %s\n", info.Description)
	if len(info.ConfigKeys) > 0 {
		r.Printf("Options:     %s\n", strings.Join(info.ConfigKeys, ", "))
	}
	return nil
}
