package readfiles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	good := map[string]int{
		"03/05/1999": 19990305,
		"12/31/2020": 20201231,
		"01/01/0001": 10101,
		"02/29/2024": 20240229,
		"3/5/1999":   19990305,
		"10/07/2003": 20031007,
	}
	for in, want := range good {
		got, err := FormatDate(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	bad := []string{
		"", "03/05", "1999-03-05", "03/05/99", "13/01/2000", "02/30/2021",
		"00/10/2000", "aa/05/1999", "03//1999", "+3/05/1999", "03/05/1999/1",
	}
	for _, in := range bad {
		_, err := FormatDate(in)
		assert.True(t, errors.Is(err, ErrMalformedDate), "%q: %v", in, err)
	}
}
