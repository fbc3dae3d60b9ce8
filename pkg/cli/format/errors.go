package format

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Error colors
var (
	ErrorColor   = color.New(color.FgRed, color.Bold)
	WarningColor = color.New(color.FgYellow, color.Bold)
	SuccessColor = color.New(color.FgGreen, color.Bold)
	FileColor    = color.New(color.FgCyan)
	HintColor    = color.New(color.FgYellow, color.Italic)
)

// PrintError writes a styled error line to stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", ErrorColor.Sprint("Error:"), err)
}

// PrintWarning writes a styled warning line to stderr.
func PrintWarning(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningColor.Sprint("Warning:"), fmt.Sprintf(format, a...))
}

// PrintHint writes a styled hint line to stderr.
func PrintHint(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, HintColor.Sprintf(format, a...))
}
