package confdoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantInt bool
	}{
		{"20", "20", true},
		{"-3841836736254238123", "-3841836736254238123", true},
		{"20.0", "20", true},
		{"1e3", "1000", true},
		{"42.5", "42.5", false},
		{"0.1", "0.1", false},
		{" 7 ", "7", true},
		{"+12", "12", true},
		{"9223372036854775808", "9223372036854775808", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.wantInt, n.IsInt())
		})
	}
}

func TestParseNumber_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "12abc", "0x1F", "Inf", "-Infinity", "NaN", "1e400", "1_000"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseNumber(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))
		})
	}
}

func TestFloat_NormalizesIntegralValues(t *testing.T) {
	assert.Equal(t, Int(20), Float(20))
	assert.True(t, Equal(Int(-4), Float(-4.0)))
	assert.False(t, Float(2.5).IsInt())
	assert.Equal(t, int64(2), Float(2.5).Int64())
	assert.Equal(t, 20.0, Int(20).Float64())
}
