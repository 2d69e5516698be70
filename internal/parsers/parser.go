package parsers

import "regexp"

// Kind identifies which statement form an occurrence was found with
type Kind int

const (
	// Import is the `from 'dependency'` clause of an import statement
	Import Kind = iota
	// Require is the `require('dependency')` call
	Require
)

// String returns the name of the statement form
func (k Kind) String() string {
	switch k {
	case Import:
		return "import"
	case Require:
		return "require"
	default:
		return "unknown"
	}
}

// importPattern matches `from 'dependency'` or `from "dependency"`
var importPattern = regexp.MustCompile(`from\s+(?:'([^'"\n:]+)'|"([^'"\n:]+)")`)

// requirePattern matches `require('dependency')` or `require("dependency")`
var requirePattern = regexp.MustCompile(`require\((?:'([^'".)]*)'|"([^'".)]*)")\)`)

// scopedPattern extracts `@scope/dependency` from `@scope/dependency/module`
var scopedPattern = regexp.MustCompile(`^(@[^/]+/[^/]+)`)

// partialPattern extracts `dependency` from `dependency/module`
var partialPattern = regexp.MustCompile(`^([^/]+)/`)

func (k Kind) pattern() *regexp.Regexp {
	if k == Import {
		return importPattern
	}
	return requirePattern
}

// FindAll returns every non-overlapping occurrence of the statement form in content
func FindAll(kind Kind, content string) []string {
	return kind.pattern().FindAllString(content, -1)
}

// Dependency extracts the dependency path from a raw occurrence.
// It reports false when the occurrence does not match or captures nothing.
func Dependency(kind Kind, occurrence string) (string, bool) {
	m := kind.pattern().FindStringSubmatch(occurrence)
	if m == nil {
		return "", false
	}

	// One of the two quote branches captured the name
	dep := m[1]
	if dep == "" {
		dep = m[2]
	}
	return dep, dep != ""
}

// RootPackage collapses a sub-pathed dependency into its package name:
// `@scope/pkg/sub` becomes `@scope/pkg`, `pkg/sub` becomes `pkg`.
func RootPackage(dep string) string {
	if m := scopedPattern.FindStringSubmatch(dep); m != nil {
		return m[1]
	}
	if m := partialPattern.FindStringSubmatch(dep); m != nil {
		return m[1]
	}
	return dep
}
