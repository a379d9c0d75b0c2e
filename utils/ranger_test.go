package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	for _, tc := range []struct {
		dim      string
		expected Index
	}{
		{"", Index{0, 1, 2, 3, 4}},
		{":", Index{0, 1, 2, 3, 4}},
		{"end", Index{4}},
		{"2", Index{2}},
		{"1:3", Index{1, 2}},
		{":2", Index{0, 1}},
		{"3:", Index{3, 4}},
		{" 3: ", Index{3, 4}},
	} {
		I, err := ParseRange(tc.dim, 5)
		require.NoError(t, err, tc.dim)
		assert.Equal(t, tc.expected, I, tc.dim)
	}
	for _, dim := range []string{"5", "3:2", "2:2", "0:6", "a:2", "1:2:3", "-1"} {
		_, err := ParseRange(dim, 5)
		assert.Error(t, err, dim)
	}
}
