package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("strips chrome elements", func(t *testing.T) {
		html := `<html><head><style>body{color:red}</style></head><body>
<header>Site Header</header>
<nav>Menu</nav>
<p>Section 1. Short title.</p>
<script>alert("hi")</script>
<footer>Footer text</footer>
</body></html>`
		got := Normalize(html)
		assert.Equal(t, "Section 1. Short title.", got)
	})

	t.Run("trims and drops blank lines", func(t *testing.T) {
		html := "<p>  first  </p>\n\n\n<p>second</p>"
		got := Normalize(html)
		assert.Equal(t, "first\nsecond", got)
	})

	t.Run("double spaces split phrases", func(t *testing.T) {
		got := Normalize("SEC. 2.  DEFINITIONS.")
		assert.Equal(t, "SEC. 2.\nDEFINITIONS.", got)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		got := Normalize("just some words")
		assert.Equal(t, "just some words", got)
	})

	t.Run("idempotent", func(t *testing.T) {
		html := `<div><p>One  Act</p><p>  Two </p></div>`
		once := Normalize(html)
		assert.Equal(t, once, Normalize(once))
	})

	t.Run("malformed markup never fails", func(t *testing.T) {
		got := Normalize("<p>unclosed <b>tag")
		assert.Equal(t, "unclosed tag", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})
}
