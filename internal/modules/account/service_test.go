package account

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderName(t *testing.T) {
	t.Run("never empty", func(t *testing.T) {
		// Names carry a unique index; an empty fallback would let only one
		// nameless signup through and lock every later one out.
		assert.NotEmpty(t, placeholderName(""))
		assert.NotEmpty(t, placeholderName("auth0|user-1"))
	})

	t.Run("prefixed and short", func(t *testing.T) {
		name := placeholderName("auth0|user-1")
		assert.True(t, strings.HasPrefix(name, "user-"))
		assert.LessOrEqual(t, len(name), 20)
	})

	t.Run("stable per subject", func(t *testing.T) {
		assert.Equal(t, placeholderName("auth0|user-1"), placeholderName("auth0|user-1"))
	})

	t.Run("distinct subjects yield distinct names", func(t *testing.T) {
		assert.NotEqual(t, placeholderName("auth0|user-1"), placeholderName("auth0|user-2"))
	})
}
