package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"voice-dataset/utils"
)

// Build walks the class directories under basePath in the given order
// and assembles the dataset. The label for every row is the position
// of its class directory in classDirs. Files are processed in sorted
// filename order so repeated runs over an unchanged tree produce
// identical output. Files that fail to decode are recorded in
// Failures and skipped; an unreadable class directory aborts the
// build.
func Build(dec Decoder, basePath string, classDirs []string, start, end int) (*Dataset, error) {
	if start < 0 || start > end {
		return nil, fmt.Errorf("invalid sample window [%d, %d)", start, end)
	}
	if len(classDirs) == 0 {
		return nil, fmt.Errorf("no class directories given")
	}

	logger := utils.GetLogger()

	ds := &Dataset{
		Classes:     append([]string(nil), classDirs...),
		StartSample: start,
		EndSample:   end,
	}

	for label, classDir := range classDirs {
		dirPath := filepath.Join(basePath, classDir)
		files, err := listFiles(dirPath)
		if err != nil {
			return nil, fmt.Errorf("list class directory %s: %w", dirPath, err)
		}

		logger.Info("processing class directory",
			slog.String("dir", classDir),
			slog.Int("label", label),
			slog.Int("files", len(files)))

		for _, filePath := range files {
			signal, err := Extract(dec, filePath, start, end)
			if err != nil {
				logger.Warn("skipping file after decode failure",
					slog.String("file", filePath),
					slog.Any("error", err))
				ds.Failures = append(ds.Failures, FileFailure{Path: filePath, Err: err})
				continue
			}
			ds.Signals = append(ds.Signals, signal)
			ds.Labels = append(ds.Labels, label)
		}
	}

	return ds, nil
}

// listFiles returns the regular files directly under dir, sorted
// lexicographically by name. Subdirectories and hidden files are
// ignored.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
