package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salesetl",
	Short: "Batch ETL for daily sales record files",
	Long: `salesetl gathers every .csv sales file in a directory, merges them into one
dataset, cleans the unit price and quantity columns into plain numbers, and
replaces a table in a relational store with the result.

Each run reprocesses the whole directory. The destination table is dropped and
recreated every time.

Exit Codes:
  0  - Success (including runs that found nothing to load)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or store location
  11 - Store could not be opened or written
  12 - Input files lack a required column
  13 - Nothing was loaded and --strict was given`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
