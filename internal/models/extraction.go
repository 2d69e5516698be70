package models

// Extraction holds the raw occurrences found in a file or a directory tree
type Extraction struct {
	Imports  []string // e.g. from 'dependency'
	Requires []string // e.g. require('dependency')

	// Skipped lists files found while walking that could not be read
	Skipped []string
}

// Empty returns true if no import or require occurrence was found
func (e *Extraction) Empty() bool {
	return len(e.Imports) == 0 && len(e.Requires) == 0
}

// Merge appends the occurrences of other to e
func (e *Extraction) Merge(other *Extraction) {
	if other == nil {
		return
	}
	e.Imports = append(e.Imports, other.Imports...)
	e.Requires = append(e.Requires, other.Requires...)
	e.Skipped = append(e.Skipped, other.Skipped...)
}

// Result is the outcome of an extraction, ready to be reported
type Result struct {
	Path         string
	MergePartial bool
	Dependencies []string
}
