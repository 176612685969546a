package source

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher checks if file paths match configured patterns
type Matcher interface {
	Match(path string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	patterns []glob.Glob
}

// NewMatcher creates a new Matcher from glob patterns
func NewMatcher(patterns []string) (Matcher, error) {
	m := &matcher{patterns: make([]glob.Glob, 0, len(patterns))}

	for _, p := range expandPatterns(patterns) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	return m, nil
}

// expandPatterns expands patterns starting with **/ to also match at root level
func expandPatterns(patterns []string) []string {
	expanded := make([]string, 0, len(patterns)*2)

	for _, p := range patterns {
		expanded = append(expanded, p)

		if strings.HasPrefix(p, "**/") {
			expanded = append(expanded, strings.TrimPrefix(p, "**/"))
		}
	}

	return expanded
}

// Match returns true if the relative path matches any pattern
func (m *matcher) Match(path string) bool {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	for _, pattern := range m.patterns {
		if pattern.Match(path) {
			return true
		}
	}

	return false
}
