package jshintrc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jshintmate/pkg/jshintrc"
)

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no comments", `{"a": 1}`, `{"a": 1}`},
		{"line comment", "{\"a\": 1 // one\n}", "{\"a\": 1 \n}"},
		{"block comment", `{/* x */"a": 1}`, `{"a": 1}`},
		{"slashes in string", `{"url": "http://example.com"}`, `{"url": "http://example.com"}`},
		{"escaped quote in string", `{"q": "a\"//b"}`, `{"q": "a\"//b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(jshintrc.StripComments([]byte(tt.input))))
		})
	}
}

func TestParseJSONC(t *testing.T) {
	t.Parallel()

	var doc map[string]any
	require.NoError(t, jshintrc.ParseJSONC([]byte("{\n// c\n\"undef\": true\n}"), &doc))
	assert.Equal(t, true, doc["undef"])

	require.Error(t, jshintrc.ParseJSONC([]byte("{undef: true}"), &doc))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))

	err := jshintrc.Validate(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, jshintrc.ErrInvalidConfig)

	err = jshintrc.Validate(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, jshintrc.ErrInvalidConfig)
}
