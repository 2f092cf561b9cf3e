package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"toolcheck/internal/registry"
)

func init() {
	rootCmd.AddCommand(latestCmd)
}

var latestCmd = &cobra.Command{
	Use:   "latest <tool>",
	Short: "Query the registry directly for a tool's newest version",
	Long:  "Bypasses the disk cache and asks the configured registry for the newest published version.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		probe := checkOptions().Probe
		ctx, cancel := context.WithTimeout(cmd.Context(), registry.FetchTimeout)
		defer cancel()
		v, err := probe.Latest(ctx, args[0])
		if err != nil {
			return fmt.Errorf("query %s: %w", args[0], err)
		}
		// bare version on stdout for scripting
		fmt.Println(v)
		return nil
	},
}
