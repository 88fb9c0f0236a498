package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner. Colors degrade to plain text when w is not a terminal.
func PrintBanner(w io.Writer, title, version string) {
	out := termenv.NewOutput(w)
	name := out.String(" " + title + " ").Bold().Foreground(out.Color("#ffffff")).Background(out.Color("#478fce"))
	ver := out.String("v" + strings.TrimSpace(version)).Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", name, ver)
	fmt.Fprintln(w, out.String("  Type a number to choose, q to quit.").Faint())
	fmt.Fprintln(w)
}
