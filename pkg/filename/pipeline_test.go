package filename_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/friendlyname/pkg/filename"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "a/b",
			transforms: []func(string) string{filename.Sanitize},
			expected:   "a_b",
		},
		{
			name:  "applies transforms in sequence",
			input: "  Notes: Draft  ",
			transforms: []func(string) string{
				filename.Sanitize,
				strings.ToLower,
			},
			expected: "notes_ draft",
		},
		{
			name:       "handles empty transforms slice",
			input:      "a/b",
			transforms: []func(string) string{},
			expected:   "a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, filename.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("builds reusable pipeline", func(t *testing.T) {
		t.Parallel()
		slug := filename.Compose(strings.TrimSpace, filename.Sanitize, strings.ToUpper)
		assert.Equal(t, "A_B", slug(" a:b "))
		assert.Equal(t, "C-D", slug("c\nd"))
	})

	t.Run("skips nil stages", func(t *testing.T) {
		t.Parallel()
		var missing func(string) string
		p := filename.Compose(missing, strings.ToUpper, missing)
		assert.Equal(t, "ABC", p("abc"))
	})

	t.Run("no stages is identity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 42, filename.Compose[int]()(42))
	})
}
