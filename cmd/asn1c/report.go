package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1c"
)

// reportDiagnostics prints one line per accumulated diagnostic, widthfit to
// the attached terminal when stdout is one (mirroring
// pkg/util/termio/terminal.go's own term.GetSize/term.IsTerminal use),
// falling back to an unwrapped line per diagnostic otherwise.
func reportDiagnostics(w io.Writer, diagnostics []diag.Diagnostic) {
	if len(diagnostics) == 0 {
		fmt.Fprintln(w, "no diagnostics")
		return
	}

	width := terminalWidth()

	for _, d := range diagnostics {
		line := fmt.Sprintf("[%s] %s", strings.ToUpper(d.Severity.String()), d.Error())
		if width > 0 && len(line) > width {
			line = line[:width-1] + "…"
		}

		fmt.Fprintln(w, line)
	}
}

// reportGroups prints a summary of the module-grouped, validated output.
func reportGroups(w io.Writer, resolved asn1c.Resolved) {
	fmt.Fprintf(w, "\n%d definition(s) resolved across %d module(s):\n", len(resolved.TLDs), len(resolved.Groups))

	for _, g := range resolved.Groups {
		name := g.Module
		if name == "" {
			name = "(unnamed)"
		}

		fmt.Fprintf(w, "  %s: %d definition(s)\n", name, len(g.TLDs))
	}
}

// terminalWidth returns stdout's current column width, or 0 if stdout is not
// a terminal (e.g. piped to a file or another process).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}
