package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// logLevels contains the accepted --log-level values for shell completion.
var logLevels = []string{"verbose", "info", "warn", "error"}

// completeLogLevels provides shell completion for --log-level.
func completeLogLevels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, l := range logLevels {
		if strings.HasPrefix(l, toComplete) {
			matches = append(matches, l)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeStoreLocations suggests store location prefixes; plain file paths
// fall back to file completion.
func completeStoreLocations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefixes := []string{"sqlite:", "duckdb:", "postgres://"}

	var matches []string
	for _, p := range prefixes {
		if strings.HasPrefix(p, toComplete) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return matches, cobra.ShellCompDirectiveNoSpace
}
