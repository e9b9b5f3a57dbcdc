package bills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePatterns(t *testing.T) {
	t.Run("one pattern per term", func(t *testing.T) {
		// Each term becomes its own alternative; trending unions them
		// instead of requiring every term to match the same title.
		patterns := likePatterns([]string{"energy", "health"})
		assert.Equal(t, []string{"%energy%", "%health%"}, patterns)
	})

	t.Run("terms are trimmed", func(t *testing.T) {
		assert.Equal(t, []string{"%energy%"}, likePatterns([]string{"  energy "}))
	})

	t.Run("blank terms are dropped", func(t *testing.T) {
		assert.Equal(t, []string{"%energy%"}, likePatterns([]string{"", "  ", "energy"}))
	})

	t.Run("no terms", func(t *testing.T) {
		assert.Empty(t, likePatterns(nil))
		assert.Empty(t, likePatterns([]string{"", " "}))
	})
}
