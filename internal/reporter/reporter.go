package reporter

import "github.com/ethanolivertroy/js-dependency-extractor/internal/models"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given extraction result
	Report(result models.Result) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	default:
		return &TextReporter{}
	}
}
