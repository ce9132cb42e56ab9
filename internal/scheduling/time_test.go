package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime_ZeroPads(t *testing.T) {
	got, err := NormalizeTime("start_time", "9:00")
	assert.NoError(t, err)
	assert.Equal(t, "09:00", got)

	got, err = NormalizeTime("start_time", "12:30")
	assert.NoError(t, err)
	assert.Equal(t, "12:30", got)
}

func TestNormalizeTime_Idempotent(t *testing.T) {
	for _, in := range []string{"9:00", "09:00", "0:05", "23:59", "7:45"} {
		once, err := NormalizeTime("t", in)
		assert.NoError(t, err)
		twice, err := NormalizeTime("t", once)
		assert.NoError(t, err)
		assert.Equal(t, once, twice, "normalize(normalize(%q))", in)
	}
}

func TestNormalizeTime_RejectsMalformed(t *testing.T) {
	cases := []string{"", "900", "9.00", "ab:cd", "9:0", "9:000", "24:00", "12:60", "-1:00", "12:30:00"}
	for _, in := range cases {
		_, err := NormalizeTime("start_time", in)
		assert.Error(t, err, "input %q", in)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "input %q", in)
		assert.Equal(t, "start_time", verr.Field)
	}
}

func TestNormalizeRange(t *testing.T) {
	s, e, err := NormalizeRange("9:00", "12:00")
	assert.NoError(t, err)
	assert.Equal(t, "09:00", s)
	assert.Equal(t, "12:00", e)

	_, _, err = NormalizeRange("12:00", "12:00")
	assert.Error(t, err)

	_, _, err = NormalizeRange("14:00", "9:30")
	assert.Error(t, err)
}
