package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain token", "abc123", "abc123"},
		{"bearer prefix", "Bearer abc123", "abc123"},
		{"lowercase bearer", "bearer abc123", "abc123"},
		{"padded", "  Bearer   abc123  ", "abc123"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bearer without token", "Bearer ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeToken(tc.in))
		})
	}
}
