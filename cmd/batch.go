package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Analyze every HAR file under a directory",
	Long: `Recursively discover *.har files under the given directory and run the
analysis on each one. Files are processed independently: a file that fails
to load or analyze is logged and skipped, and the remaining files are still
processed.`,
	Args: cobra.ExactArgs(1),
	Example: `  harlens batch ./har
  harlens batch ./har --out reports --format csv`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	logger := GetLogger()

	harFiles, err := discoverHARFiles(dir)
	if err != nil {
		return err
	}
	if len(harFiles) == 0 {
		return fmt.Errorf("no HAR files found under %s", dir)
	}

	logger.Info("starting batch analysis", "dir", dir, "files", len(harFiles))

	var failed []string
	for _, harFile := range harFiles {
		if _, err := AnalyzeFile(harFile, logger); err != nil {
			// per-file isolation: record and keep going
			logger.Error("analysis failed", "path", harFile, "error", err)
			failed = append(failed, harFile)
		}
	}

	logger.Info("batch analysis complete",
		"succeeded", len(harFiles)-len(failed),
		"failed", len(failed))

	if len(failed) == len(harFiles) {
		return fmt.Errorf("all %d HAR files failed to analyze", len(harFiles))
	}
	return nil
}

// discoverHARFiles walks dir recursively, collecting *.har files, deduped
// by absolute path and sorted for a stable processing order.
func discoverHARFiles(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".har") {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if _, dup := seen[abs]; dup {
			return nil
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for HAR files: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}
