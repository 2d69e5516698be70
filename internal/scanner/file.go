package scanner

import (
	"os"
	"path/filepath"
	"strings"

	exerrors "github.com/ethanolivertroy/js-dependency-extractor/internal/errors"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/parsers"
)

// ExtractFile returns all requires and imports found in a file
func ExtractFile(path string) (*models.Extraction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, exerrors.Wrapf(err, path, "error while extracting requires and imports for file %s", path)
	}

	text := string(content)
	return &models.Extraction{
		Imports:  parsers.FindAll(parsers.Import, text),
		Requires: parsers.FindAll(parsers.Require, text),
	}, nil
}

// extension returns the extension of the last path element, from its last dot.
// Dotfiles like `.babelrc` have no extension.
func extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}
