package models

// Config holds configuration for a single dependency extraction
type Config struct {
	// Path to a file or a directory to extract dependencies from
	Path string

	// Filtering settings, only applied when Path is a directory
	IgnorePaths    []string // Paths containing any of these substrings are skipped
	OnlyExtensions []string // Extensions to inspect, with the leading dot (empty means all)

	// MergePartial collapses `dependency/module` into `dependency`
	MergePartial bool
}
