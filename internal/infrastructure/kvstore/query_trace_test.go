package kvstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQueryForTrace_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got := formatQueryForTrace(" SELECT   value\nFROM kv_entries \t WHERE key = ? ")

	assert.Equal(t, "SELECT value FROM kv_entries WHERE key = ?", got)
}

func TestFormatQueryForTrace_TruncatesLongQueries(t *testing.T) {
	t.Parallel()

	long := "SELECT " + strings.Repeat("x", 1000)

	got := formatQueryForTrace(long)

	assert.Len(t, got, maxTracedQueryLength+len("..."))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFormatQueryForTrace_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", formatQueryForTrace("   "))
}
