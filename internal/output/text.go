package output

import (
	"fmt"
	"io"
	"os"

	"github.com/nholzer/samplecheck/internal/checker"
	"golang.org/x/term"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// TextWriter writes one result line per URL: "<url>: <status>" on success,
// "<url>: Error <description>" on failure.
type TextWriter struct {
	w       io.Writer
	noColor bool
}

// NewTextWriter creates a text output writer. If outputFile is empty, stdout
// is used. Colors are disabled when noColor is set, when writing to a file,
// or when stdout is not a terminal.
func NewTextWriter(outputFile string, noColor bool) (*TextWriter, error) {
	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		noColor = true
	} else if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
	return &TextWriter{w: w, noColor: noColor}, nil
}

func (t *TextWriter) WriteResult(result *checker.Result) error {
	if result.Err != nil {
		color, reset := t.colors(colorRed)
		_, err := fmt.Fprintf(t.w, "%s: %sError %v%s\n", result.URL, color, result.Err, reset)
		return err
	}
	color, reset := t.colors(t.colorForStatus(result.StatusCode))
	_, err := fmt.Fprintf(t.w, "%s: %s%d%s\n", result.URL, color, result.StatusCode, reset)
	return err
}

func (t *TextWriter) Close() error {
	if closer, ok := t.w.(io.Closer); ok && t.w != os.Stdout {
		return closer.Close()
	}
	return nil
}

func (t *TextWriter) colors(color string) (string, string) {
	if t.noColor || color == "" {
		return "", ""
	}
	return color, colorReset
}

func (t *TextWriter) colorForStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	case code >= 500:
		return colorRed
	default:
		return ""
	}
}
