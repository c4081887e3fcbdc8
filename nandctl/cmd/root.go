// Package cmd provides the command-line interface for nandctl.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands
var rootCmd = &cobra.Command{
	Use: "nandctl",
	Short: "nandctl inspects the pure parts of the NAND controller " +
		"logic from the command line.",
	Long: `nandctl inspects the pure parts of the NAND controller logic ` +
		`from the command line: it solves bus timing for a device timing ` +
		`table, packs and unpacks 4-bit ECC codewords, and prints ` +
		`spare-area layouts.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
