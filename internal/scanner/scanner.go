package scanner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	exerrors "github.com/ethanolivertroy/js-dependency-extractor/internal/errors"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/logging"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
)

// Scanner orchestrates the dependency extraction process
type Scanner struct {
	config *models.Config
	logger *slog.Logger
}

// Option configures a Scanner
type Option func(*Scanner)

// WithLogger sets the logger used for progress and skipped files
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a new Scanner with the given configuration
func New(config *models.Config, opts ...Option) *Scanner {
	if config == nil {
		config = &models.Config{}
	}
	s := &Scanner{
		config: config,
		logger: logging.Global(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract extracts the dependencies at config.Path
func Extract(ctx context.Context, config *models.Config, opts ...Option) ([]string, error) {
	return New(config, opts...).Scan(ctx)
}

// Scan extracts dependencies from the configured file or directory and returns
// them sorted alphabetically. Any failure is returned as an *errors.ExtractionError.
func (s *Scanner) Scan(ctx context.Context) ([]string, error) {
	cfg := s.config
	log := s.logger.With("path", cfg.Path)
	log.Debug("extracting dependencies",
		"ignore_paths", cfg.IgnorePaths,
		"only_extensions", cfg.OnlyExtensions,
		"merge_partial", cfg.MergePartial)

	extracted, err := s.extract(ctx)
	if err != nil {
		wrapped := exerrors.Wrapf(err, cfg.Path, "unable to extract dependencies at %s", cfg.Path)
		log.Debug("extraction failed", "error", wrapped)
		return nil, wrapped
	}

	for _, skipped := range extracted.Skipped {
		log.Debug("file contributed no dependencies", "file", skipped)
	}

	// Nothing to normalize
	if extracted.Empty() {
		return []string{}, nil
	}

	deps := DependencyNames(extracted.Imports, extracted.Requires, cfg.MergePartial)
	log.Debug("extracted dependencies", "count", len(deps))
	return deps, nil
}

// extract dispatches to the file or directory extractor
func (s *Scanner) extract(ctx context.Context) (*models.Extraction, error) {
	if s.config.Path == "" {
		return nil, errors.New("path to a file or a directory expected, none specified")
	}

	path, err := filepath.Abs(s.config.Path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	switch {
	case info.Mode().IsRegular():
		return ExtractFile(path)
	case info.IsDir():
		return s.ExtractDirectory(ctx, path, s.config.IgnorePaths, s.config.OnlyExtensions)
	default:
		return nil, exerrors.New(path, "valid path to a file or a directory expected, found "+s.config.Path)
	}
}
