package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/cli/config"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
)

type ctxKey int

const (
	configKey ctxKey = iota
	rendererKey
	loggerKey
)

// WithRuntime stores the shared per-invocation objects in the context.
// Called by the root command after config loading.
func WithRuntime(ctx context.Context, cfg *config.Config, r *output.Renderer, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, rendererKey, r)
	ctx = context.WithValue(ctx, loggerKey, logger)
	return ctx
}

// CommandContext bundles what every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// NewCommandContext extracts the shared objects from the command's context,
// falling back to usable defaults so commands also work standalone in tests.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cc := &CommandContext{}
	ctx := cmd.Context()
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
			cc.Cfg = cfg
		}
		if r, ok := ctx.Value(rendererKey).(*output.Renderer); ok {
			cc.Renderer = r
		}
		if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
			cc.Logger = l
		}
	}
	if cc.Cfg == nil {
		cc.Cfg = &config.Config{OutputFormat: string(output.ModeAuto)}
	}
	if cc.Renderer == nil {
		cc.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cc.Cfg.OutputFormat))
	}
	if cc.Logger == nil {
		cc.Logger = NewLogger(cc.Cfg.Verbose)
	}
	return cc
}

// NewLogger builds the CLI logger: debug text on stderr when verbose,
// discard otherwise.
func NewLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
