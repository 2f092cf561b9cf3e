package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"toolcheck/internal/update"
)

var (
	styleUpdate = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <tool> <current-version>",
	Short: "Check whether a newer release of a tool exists",
	Long:  "Checks the configured registry (through the 24h disk cache) for a release newer than the given version.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, current := args[0], args[1]
		c := update.New(tool, current, checkOptions())
		c.CheckAsync()
		if latest, ok := c.Update(update.SyncWait); ok {
			fmt.Println(styleUpdate.Render(fmt.Sprintf("update available: %s %s → %s", tool, current, latest)))
			fmt.Printf("  run: %s\n", c.InstallHint())
			return nil
		}
		fmt.Println(styleOK.Render(fmt.Sprintf("%s %s: no newer release found", tool, current)))
		return nil
	},
}
