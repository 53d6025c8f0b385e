// Package output renders lint reports for terminals, pipes, and machines.
//
// Output adapts to the environment: interactive terminals get styled text,
// piped output falls back to plain markdown, and --output json switches to a
// machine-readable format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects the rendering style.
type Mode string

// Rendering modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes rendered output to an out and error stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. An empty or "auto" mode resolves against
// the output stream on first use.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: DefaultStyles(),
	}
}

// EffectiveMode resolves ModeAuto: styled text on a terminal, markdown when
// piped or redirected.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if isTerminal(r.out) {
		return ModeText
	}
	return ModeMarkdown
}

// isTerminal reports whether the writer is an interactive terminal.
// termenv degrades to the Ascii profile for anything that is not a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Styles returns the style set for the effective mode. Non-terminal modes
// get no-op styles.
func (r *Renderer) Styles() Styles {
	if r.EffectiveMode() != ModeText {
		return PlainStyles()
	}
	return r.styles
}

// Out returns the underlying output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Success writes a success message to the output stream.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.Styles().Success.Render(msg))
}

// Errorf writes a formatted message to the error stream.
func (r *Renderer) Errorf(format string, a ...any) {
	fmt.Fprintf(r.errOut, format, a...)
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
