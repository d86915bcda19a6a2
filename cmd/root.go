package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harlens/harlens/harlog"
	"github.com/harlens/harlens/lens"
	"github.com/harlens/harlens/report"
)

var (
	verbose   bool
	outputDir string
	format    string
	Logger    *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "harlens <har-file>",
		Short: "Web performance diagnosis from HAR network traces",
		Long: `Harlens ingests a captured HAR (HTTP Archive) trace and produces a
performance diagnosis: per-request timing breakdowns, page navigation
metrics, aggregate statistics and a list of likely bottlenecks with
remediation suggestions, written as a multi-sheet spreadsheet report.`,
		Args: cobra.ExactArgs(1),
		Example: `  harlens recording.har
  harlens recording.har --out reports --format csv
  harlens recording.har -v`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: runAnalyze,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Directory for report output (default: beside the input file)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "xlsx", "Report format: xlsx or csv")

	// will be reconfigured in PersistentPreRun based on flags
	setupLogger()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	harFile := args[0]

	if err := ValidateHARFile(harFile); err != nil {
		return fmt.Errorf("invalid HAR file: %w", err)
	}

	if _, err := AnalyzeFile(harFile, GetLogger()); err != nil {
		return err
	}
	return nil
}

// AnalyzeFile loads one HAR file, runs the analysis pipeline and writes the
// report in the selected format. The report is returned so callers can keep
// inspecting it.
func AnalyzeFile(harFile string, logger *slog.Logger) (*lens.Report, error) {
	logger.Debug("loading HAR file", "path", harFile)

	doc, err := harlog.Load(harFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load HAR file: %w", err)
	}

	logger.Info("HAR file loaded",
		"path", harFile,
		"entries", len(doc.Entries),
		"pages", len(doc.Pages))

	result := lens.Analyze(doc)

	logger.Info("analysis complete",
		"requests", result.Summary.TotalRequests,
		"slow", result.Summary.SlowRequests,
		"errors", result.Summary.ErrorRequests,
		"findings", len(result.Findings))

	if err := writeReport(result, harFile, logger); err != nil {
		return nil, err
	}

	return result, nil
}

func writeReport(result *lens.Report, harFile string, logger *slog.Logger) error {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(harFile)
	}

	base := strings.TrimSuffix(filepath.Base(harFile), filepath.Ext(harFile))
	stamp := time.Now().Format("20060102_150405")

	switch format {
	case "csv":
		paths, err := report.WriteCSV(result, dir, fmt.Sprintf("%s_report_%s", base, stamp))
		if err != nil {
			return fmt.Errorf("failed to write CSV report: %w", err)
		}
		logger.Info("report written", "files", len(paths), "dir", dir)
	case "xlsx":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_report_%s.xlsx", base, stamp))
		if err := report.WriteExcel(result, path); err != nil {
			return fmt.Errorf("failed to write Excel report: %w", err)
		}
		logger.Info("report written", "path", path)
	default:
		return fmt.Errorf("unknown report format: %q (want xlsx or csv)", format)
	}

	return nil
}

// setupLogger configures the global slog logger based on the verbose flag
func setupLogger() {
	var opts *slog.HandlerOptions

	if verbose {
		opts = &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	if verbose {
		Logger.Debug("verbose logging enabled",
			"level", slog.LevelDebug.String(),
			"pid", os.Getpid())
	}
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	if Logger == nil {
		setupLogger()
	}
	return Logger
}

// ValidateHARFile checks if the provided HAR file exists and is accessible
// check if the file exists, and it is not a directory.
func ValidateHARFile(harFile string) error {
	if harFile == "" {
		return fmt.Errorf("HAR file path is required")
	}

	info, err := os.Stat(harFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("HAR file does not exist: %s", harFile)
		}
		return fmt.Errorf("error accessing HAR file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("provided path is a directory, not a file: %s", harFile)
	}

	return nil
}
