package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cpfkit/pkg/sanitizer"
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
			input:      "111.444.777-35",
			transforms: []func(string) string{sanitizer.StripSeparators},
			expected:   "11144477735",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: " 111.444.777-35 ",
			transforms: []func(string) string{
				strings.TrimSpace,
				sanitizer.StripSeparators,
				sanitizer.MaskDocument,
			},
			expected: "*********35",
		},
		{
			name:       "handles empty transforms slice",
			input:      "111.444.777-35",
			transforms: []func(string) string{},
			expected:   "111.444.777-35",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.StripSeparators,
				sanitizer.ExtractNumbers,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	normalize := sanitizer.Compose(
		sanitizer.StripSeparators,
		sanitizer.ExtractNumbers,
	)

	assert.Equal(t, "11144477735", normalize("111.444.777-35"))
	assert.Equal(t, "11144477735", normalize("111 444 777/35"))
	assert.Equal(t, "", normalize("..--"))

	identity := sanitizer.Compose[string]()
	assert.Equal(t, "abc", identity("abc"))
}
