package reporter

import (
	"encoding/json"

	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
)

// JSONReporter outputs the extraction result in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Path         string   `json:"path"`
	MergePartial bool     `json:"merge_partial"`
	Count        int      `json:"count"`
	Dependencies []string `json:"dependencies"`
}

// Report generates JSON output for the given extraction result
func (r *JSONReporter) Report(result models.Result) ([]byte, error) {
	output := jsonOutput{
		Path:         result.Path,
		MergePartial: result.MergePartial,
		Count:        len(result.Dependencies),
		Dependencies: result.Dependencies,
	}
	if output.Dependencies == nil {
		output.Dependencies = []string{}
	}

	out, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
