// Package langdetect decides whether a buffer is script source or markup with
// embedded script regions. It uses go-enry for filename and content detection
// when the editor does not provide a scope.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind classifies a buffer for extraction purposes.
type Kind int

const (
	// Script buffers are passed to the engine unchanged.
	Script Kind = iota
	// Markup buffers have their script regions extracted first.
	Markup
)

func (k Kind) String() string {
	if k == Markup {
		return "markup"
	}
	return "script"
}

// NeedsExtraction reports whether the kind requires embedded-script extraction.
func (k Kind) NeedsExtraction() bool {
	return k == Markup
}

// markupLanguages are go-enry language names whose files embed script in markup.
//
//nolint:gochecknoglobals // Read-only lookup table.
var markupLanguages = map[string]bool{
	"HTML":       true,
	"HTML+ERB":   true,
	"HTML+PHP":   true,
	"HTML+Razor": true,
	"PHP":        true,
	"Vue":        true,
	"Svelte":     true,
	"XML":        true,
	"XHTML":      true,
	"Handlebars": true,
	"Mustache":   true,
}

// Classify decides the buffer kind. Sources are consulted in order:
//  1. The editor scope: "source.*" is script, "text.*" is markup.
//  2. The filename extension, via go-enry.
//  3. The leading content, via the go-enry shebang lookup and HTML patterns.
//
// Buffers nothing can classify are treated as script.
func Classify(scope, filename string, head []byte) Kind {
	if kind, ok := fromScope(scope); ok {
		return kind
	}
	if kind, ok := fromFilename(filename); ok {
		return kind
	}
	return fromContent(head)
}

// fromScope inspects the top-level scope, the first space-separated selector.
func fromScope(scope string) (Kind, bool) {
	fields := strings.Fields(scope)
	if len(fields) == 0 {
		return Script, false
	}

	top := fields[0]
	switch {
	case strings.HasPrefix(top, "source."):
		return Script, true
	case strings.HasPrefix(top, "text."):
		return Markup, true
	default:
		return Script, false
	}
}

func fromFilename(filename string) (Kind, bool) {
	if filename == "" {
		return Script, false
	}

	base := filepath.Base(filename)
	candidates := enry.GetLanguagesByExtension(base, nil, nil)
	if len(candidates) == 0 {
		candidates = enry.GetLanguagesByFilename(base, nil, nil)
	}
	if len(candidates) == 0 {
		return Script, false
	}

	// Extensions can be ambiguous (".html" is also Ecmarkup); any markup
	// candidate means the file may embed script.
	for _, lang := range candidates {
		if markupLanguages[lang] {
			return Markup, true
		}
	}
	return Script, true
}

func fromContent(head []byte) Kind {
	trimmed := bytes.TrimSpace(head)
	if len(trimmed) == 0 {
		return Script
	}

	// A shebang is the most reliable signal (e.g. node scripts).
	if lang, safe := enry.GetLanguageByShebang(trimmed); safe && lang != "" {
		if markupLanguages[lang] {
			return Markup
		}
		return Script
	}

	if detectHTML(trimmed) {
		return Markup
	}

	return Script
}

// detectHTML checks for patterns that only occur in HTML documents.
func detectHTML(trimmed []byte) bool {
	lowerTrimmed := bytes.ToLower(trimmed)
	return bytes.Contains(lowerTrimmed, []byte("<!doctype html")) ||
		bytes.Contains(lowerTrimmed, []byte("<html")) ||
		bytes.Contains(lowerTrimmed, []byte("<head>")) ||
		bytes.Contains(lowerTrimmed, []byte("<body"))
}
