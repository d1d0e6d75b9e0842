// Package output renders human-friendly console output for report runs.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Formatter provides clean, human-friendly output
type Formatter struct {
	writer io.Writer

	green *color.Color
	red   *color.Color
	blue  *color.Color
}

// NewFormatter creates a new output formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		blue:   color.New(color.FgBlue),
	}
}

// PrintPhase prints phase separator
func (f *Formatter) PrintPhase(phase string) {
	f.blue.Fprintf(f.writer, "\n▸ %s\n", phase)
}

// PrintSuccess prints green checkmark + message
func (f *Formatter) PrintSuccess(message string) {
	f.green.Fprintf(f.writer, "✓ %s\n", message)
}

// PrintError prints red X + message + error details
func (f *Formatter) PrintError(message string, err error) {
	f.red.Fprintf(f.writer, "✗ %s", message)
	if err != nil {
		f.red.Fprintf(f.writer, ": %v", err)
	}
	fmt.Fprintf(f.writer, "\n")
}
