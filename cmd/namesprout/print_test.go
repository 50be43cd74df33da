package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/namesprout/flower"
)

func TestSproutEmptyName(t *testing.T) {
	assert.Empty(t, Sprout("", flower.Default))
}

func TestSproutLineShape(t *testing.T) {
	out := Sprout("abc", flower.ForMonth("june"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	f := flower.ForMonth("june")
	assert.Contains(t, lines[0], string(f.Glyph))
	assert.Contains(t, lines[1], "a")
	assert.Contains(t, lines[1], "b")
	assert.Contains(t, lines[1], "c")
	assert.Contains(t, lines[2], "│")
	assert.Contains(t, lines[3], f.Name)
}

func TestSproutLowercases(t *testing.T) {
	out := Sprout("ABC", flower.Default)
	assert.Contains(t, out, "a")
	assert.NotContains(t, out, "A")
}

func TestSproutSpacesGrowNoStalk(t *testing.T) {
	out := Sprout("a b", flower.Default)
	lines := strings.Split(out, "\n")
	require.True(t, len(lines) >= 3)
	assert.Equal(t, 2, strings.Count(lines[2], "│"))
}
