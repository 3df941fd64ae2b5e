package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens_NextAndPushFront(t *testing.T) {
	toks := NewTokens([]string{"-abc", "x"})

	tok, ok := toks.Next()
	assert.True(t, ok)
	assert.Equal(t, "-abc", tok)

	toks.PushFront("-bc")
	assert.Equal(t, 2, toks.Len())

	tok, _ = toks.Peek()
	assert.Equal(t, "-bc", tok)
	assert.Equal(t, []string{"-bc", "x"}, toks.Remaining())
	assert.True(t, toks.Empty())

	_, ok = toks.Next()
	assert.False(t, ok)
	_, ok = toks.Peek()
	assert.False(t, ok)
}

func TestTokens_RemainingOnEmpty(t *testing.T) {
	assert.Equal(t, []string{}, NewTokens(nil).Remaining())
}
