package strings

import (
	"io"
	"os"

	"github.com/gigc-analytics/dashlib/pkg/metrics"
)

// FindPattern scans candidates in order and returns the first one that
// contains pattern as a substring. The boolean reports whether a match
// was found; an empty pattern matches every candidate.
func FindPattern(pattern string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if Contains(candidate, pattern) {
			return candidate, true
		}
	}
	return "", false
}

// Finder locates the first candidate containing a pattern and reports
// misses to a caller-controlled writer. The zero value writes to stdout.
type Finder struct {
	// Output receives the human-readable not-found notice. The notice is
	// informational only; callers must use the boolean return to detect a
	// miss.
	Output io.Writer
}

// Find behaves like FindPattern but writes a one-line notice to Output
// when no candidate matches.
func (f *Finder) Find(pattern string, candidates []string) (string, bool) {
	match, ok := FindPattern(pattern, candidates)
	if ok {
		metrics.PatternSearches.WithLabelValues("hit").Inc()
		return match, true
	}

	metrics.PatternSearches.WithLabelValues("miss").Inc()
	out := f.Output
	if out == nil {
		out = os.Stdout
	}
	io.WriteString(out, Concat(pattern, " was not found\n"))
	return match, false
}

// FindPatternVerbose is a convenience wrapper over a stdout Finder.
func FindPatternVerbose(pattern string, candidates []string) (string, bool) {
	var f Finder
	return f.Find(pattern, candidates)
}
