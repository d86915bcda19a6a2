package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/harlens/harlens/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <har-file>",
	Short: "Browse an analysis report in the terminal UI",
	Long: `Analyze a HAR file and open the results in an interactive terminal
viewer. The four report tables (requests, page timing, summary and
bottlenecks) sit behind tab navigation.`,
	Args: cobra.ExactArgs(1),
	Example: `  harlens view recording.har
  harlens view recording.har -v`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	harFile := args[0]
	logger := GetLogger()

	if err := ValidateHARFile(harFile); err != nil {
		return err
	}

	logger.Info("launching terminal UI", "har_file", harFile)

	model := tui.NewReportModel(harFile)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
