package backend

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	short := "service unavailable"
	assert.Equal(t, short, truncate(short))

	exact := strings.Repeat("a", maxErrorBody)
	assert.Equal(t, exact, truncate(exact))

	ascii := strings.Repeat("a", maxErrorBody+10)
	assert.Equal(t, ascii[:maxErrorBody]+"...", truncate(ascii))

	// "é" is two bytes and straddles the limit.
	split := strings.Repeat("a", maxErrorBody-1) + "é" + strings.Repeat("b", 20)
	got := truncate(split)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", maxErrorBody-1)+"...", got)

	cyrillic := strings.Repeat("ж", maxErrorBody)
	got = truncate(cyrillic)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ж", maxErrorBody/2)+"...", got)
}
