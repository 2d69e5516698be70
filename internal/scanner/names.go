package scanner

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ethanolivertroy/js-dependency-extractor/internal/parsers"
)

// DependencyNames extracts dependency names from raw import and require occurrences.
// It returns an alphabetically sorted list without duplicates. When mergePartial is
// true, `dependency/module` and `@scope/dependency/module` are reduced to their package.
func DependencyNames(imports, requires []string, mergePartial bool) []string {
	seen := make(map[string]bool)
	deps := []string{}

	add := func(kind parsers.Kind, occurrences []string) {
		for _, occurrence := range unique(occurrences) {
			dep, ok := parsers.Dependency(kind, occurrence)
			if !ok {
				continue
			}
			if mergePartial {
				dep = parsers.RootPackage(dep)
			}
			if seen[dep] {
				continue
			}
			seen[dep] = true
			deps = append(deps, dep)
		}
	}

	add(parsers.Import, imports)
	add(parsers.Require, requires)

	collate.New(language.Und).SortStrings(deps)
	return deps
}

// unique returns occurrences without duplicates, keeping the first of each
func unique(occurrences []string) []string {
	seen := make(map[string]bool, len(occurrences))
	out := make([]string, 0, len(occurrences))
	for _, o := range occurrences {
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}
