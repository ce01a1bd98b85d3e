package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/linker"
	"github.com/go-asn1c/asn1c/pkg/asn1c"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] fixture_file(s)",
	Short: "Link and validate one or more JSON fixture files, reporting diagnostics.",
	Long: `Reads the top-level definitions described by each fixture file as if they
were a single working set, links and validates them, and prints every
accumulated diagnostic plus a summary of the resolved, module-grouped
output.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		if len(args) == 0 {
			fmt.Println("no fixture files given")
			os.Exit(1)
		}

		cfg := linker.DefaultConfig
		cfg.StrictConstraints = GetFlag(cmd, "strict")

		var modules []asn1c.ModuleInput

		for _, path := range args {
			loaded, err := LoadFixture(path)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}

			modules = append(modules, loaded...)
		}

		resolved, diagnostics := asn1c.Validate(modules, cfg)

		reportDiagnostics(os.Stdout, diagnostics)
		reportGroups(os.Stdout, resolved)

		if hasError(diagnostics) {
			os.Exit(1)
		}
	},
}

func hasError(diagnostics []diag.Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == diag.Error {
			return true
		}
	}

	return false
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().Bool("strict", false, "treat unresolved constraint references as errors rather than warnings")
}
