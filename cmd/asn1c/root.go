// Command asn1c is a command-line demonstration harness for the linker and
// validator core: it reads a JSON fixture describing one or more modules'
// worth of top-level definitions, runs asn1c.Validate, and reports the
// result. It is not the compiler's own parser/emitter front end (those are
// out of scope for this module) — only a convenient way to exercise the
// core directly, mirroring the teacher's own pkg/cmd root/compile command
// pair.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building via a release process; left blank for
// a plain "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "asn1c",
	Short: "Semantic linker and validator for ASN.1 module definitions.",
	Long:  "Resolves cross-references within a set of ASN.1 top-level definitions, validates constraint well-formedness, and groups the result back by module.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("asn1c ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
}

// GetFlag gets an expected bool flag, or exits if one isn't registered.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging applies the --verbose flag to the package-wide logrus
// level, mirroring the teacher's own per-command log-level setup.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
