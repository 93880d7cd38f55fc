package pathfs

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether the separator-normalized text of p matches the
// doublestar glob pattern, e.g. "**/*.txt".
func (p Path) Match(pattern string) (bool, error) {
	matched, err := doublestar.Match(pattern, convention.Normalize(p.s))
	if err != nil {
		return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
	}
	return matched, nil
}
