package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jshintmate/pkg/langdetect"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scope    string
		filename string
		head     string
		expected langdetect.Kind
	}{
		{
			name:     "javascript scope",
			scope:    "source.js meta.function.js",
			expected: langdetect.Script,
		},
		{
			name:     "html scope",
			scope:    "text.html.basic source.js.embedded.html",
			expected: langdetect.Markup,
		},
		{
			name:     "scope wins over filename",
			scope:    "source.js",
			filename: "/tmp/page.html",
			expected: langdetect.Script,
		},
		{
			name:     "html extension",
			filename: "/tmp/page.html",
			expected: langdetect.Markup,
		},
		{
			name:     "javascript extension",
			filename: "/tmp/app.js",
			expected: langdetect.Script,
		},
		{
			name:     "unknown scope falls through to filename",
			scope:    "meta.something",
			filename: "index.htm",
			expected: langdetect.Markup,
		},
		{
			name:     "doctype content",
			head:     "<!DOCTYPE html>\n<html><body></body></html>",
			expected: langdetect.Markup,
		},
		{
			name:     "node shebang",
			head:     "#!/usr/bin/env node\nconsole.log('hi');",
			expected: langdetect.Script,
		},
		{
			name:     "plain script content",
			head:     "var a = 1;\nfunction f() { return a; }\n",
			expected: langdetect.Script,
		},
		{
			name:     "empty buffer",
			expected: langdetect.Script,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := langdetect.Classify(tt.scope, tt.filename, []byte(tt.head))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.Markup.NeedsExtraction())
	assert.False(t, langdetect.Script.NeedsExtraction())
	assert.Equal(t, "markup", langdetect.Markup.String())
	assert.Equal(t, "script", langdetect.Script.String())
}
