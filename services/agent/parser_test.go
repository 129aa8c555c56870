package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalParserAbsoluteFormats(t *testing.T) {
	parser := NewNaturalParser()
	base := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	got, ok := parser.Parse("2025-06-10 09:30", base)
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestNaturalParserRelativeDates(t *testing.T) {
	parser := NewNaturalParser()
	base := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	got, ok := parser.Parse("tomorrow", base)
	require.True(t, ok)
	assert.Equal(t, 10, got.Day())
}

func TestNaturalParserRejectsGarbage(t *testing.T) {
	parser := NewNaturalParser()
	base := time.Now()

	_, ok := parser.Parse("", base)
	assert.False(t, ok)

	_, ok = parser.Parse("the heat death of the universe", base)
	assert.False(t, ok)
}
