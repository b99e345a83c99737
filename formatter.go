package zipindex

import (
	"encoding/json"
	"path"
	"sort"
)

// Formatter renders search results for a presentation shell. The label
// is the archive's conventional top-level folder name (e.g. "Jan" for
// Jan.zip).
type Formatter interface {
	// FormatMatches renders one line per matching document.
	FormatMatches(label string, names []string) []string

	// FormatNoMatch renders the line shown when nothing matched.
	FormatNoMatch() string
}

// PlainFormatter reproduces the fixed text output format:
//
//	found a match:  ./<label>/<entry basename>
type PlainFormatter struct{}

// FormatMatches renders one "found a match" line per document.
func (PlainFormatter) FormatMatches(label string, names []string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "found a match:  ./"+label+"/"+path.Base(name))
	}
	return lines
}

// FormatNoMatch renders the no-match line.
func (PlainFormatter) FormatNoMatch() string { return "no match" }

// JSONFormatter renders results as a single JSON document per query.
type JSONFormatter struct{}

type jsonMatches struct {
	Matches []string `json:"matches"`
}

// FormatMatches renders the matches as one JSON line.
func (JSONFormatter) FormatMatches(label string, names []string) []string {
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, "./"+label+"/"+path.Base(name))
	}
	b, err := json.Marshal(jsonMatches{Matches: paths})
	if err != nil {
		return nil
	}
	return []string{string(b)}
}

// FormatNoMatch renders an empty JSON match list.
func (JSONFormatter) FormatNoMatch() string { return `{"matches":[]}` }

// FormatterRegistry is a static registry of named Formatters. A name
// with no registered Formatter is a normal, handled case: Get reports
// !ok and callers fall back to a default presentation.
type FormatterRegistry struct {
	formatters map[string]Formatter
}

// NewFormatterRegistry creates an empty FormatterRegistry.
func NewFormatterRegistry() *FormatterRegistry {
	return &FormatterRegistry{formatters: make(map[string]Formatter)}
}

// Register associates name with a Formatter, replacing any previous
// registration.
func (r *FormatterRegistry) Register(name string, f Formatter) {
	r.formatters[name] = f
}

// Get returns the Formatter registered under name.
func (r *FormatterRegistry) Get(name string) (Formatter, bool) {
	f, ok := r.formatters[name]
	return f, ok
}

// List returns the registered names in lexicographic order.
func (r *FormatterRegistry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
