package scanner

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	exerrors "github.com/ethanolivertroy/js-dependency-extractor/internal/errors"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
)

// ExtractDirectory recursively extracts requires and imports from all files of a directory.
// Entries whose path contains any of ignorePaths are skipped, directories included.
// When onlyExtensions is not empty, only files with one of those extensions are read.
func (s *Scanner) ExtractDirectory(ctx context.Context, dir string, ignorePaths, onlyExtensions []string) (*models.Extraction, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, exerrors.Wrapf(err, dir, "error while extracting requires and imports for directory %s", dir)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, exerrors.Wrapf(err, dir, "error while extracting requires and imports for directory %s", dir)
	}

	// Each entry writes only to its own slot
	results := make([]*models.Extraction, len(entries))
	g, gctx := errgroup.WithContext(ctx)

	for i, entry := range entries {
		entryPath := filepath.Join(absDir, entry.Name())
		if isIgnored(entryPath, ignorePaths) {
			s.logger.Debug("ignoring path", "path", entryPath)
			continue
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			extraction, err := s.extractEntry(gctx, entryPath, ignorePaths, onlyExtensions)
			if err != nil {
				return err
			}
			results[i] = extraction
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	extracted := &models.Extraction{}
	for _, r := range results {
		extracted.Merge(r)
	}

	s.logger.Debug("extracted requires and imports for directory",
		"path", dir,
		"imports", len(extracted.Imports),
		"requires", len(extracted.Requires))

	return extracted, nil
}

// extractEntry handles a single directory entry. Only a failure to list a
// subdirectory is returned; unreadable files are logged and recorded.
func (s *Scanner) extractEntry(ctx context.Context, path string, ignorePaths, onlyExtensions []string) (*models.Extraction, error) {
	info, err := os.Stat(path)
	if err != nil {
		s.logger.Warn("unable to stat path, skipping", "path", path, "error", err)
		return nil, nil
	}

	switch {
	case info.Mode().IsRegular():
		if len(onlyExtensions) > 0 && !slices.Contains(onlyExtensions, extension(path)) {
			return nil, nil
		}

		extraction, err := ExtractFile(path)
		if err != nil {
			// Log but don't fail on individual file read errors
			s.logger.Warn("skipping file", "path", path, "error", err)
			return &models.Extraction{Skipped: []string{path}}, nil
		}
		s.logger.Debug("extracted requires and imports for file",
			"path", path,
			"imports", len(extraction.Imports),
			"requires", len(extraction.Requires))
		return extraction, nil

	case info.IsDir():
		return s.ExtractDirectory(ctx, path, ignorePaths, onlyExtensions)
	}

	return nil, nil
}

// isIgnored returns true if path contains any of the ignore substrings
func isIgnored(path string, ignorePaths []string) bool {
	for _, ignore := range ignorePaths {
		if strings.Contains(path, ignore) {
			return true
		}
	}
	return false
}
