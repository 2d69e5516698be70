package reporter

import (
	"strings"

	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
)

// TextReporter outputs one dependency name per line
type TextReporter struct{}

// Report generates text output for the given extraction result
func (r *TextReporter) Report(result models.Result) ([]byte, error) {
	if len(result.Dependencies) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	for _, dep := range result.Dependencies {
		sb.WriteString(dep)
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}
