package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInt(t *testing.T) {
	t.Run("dashes for non-coerceable non-numbers", func(t *testing.T) {
		assert.Equal(t, "----", FormatInt(NumberFromAny(nil), 4))
	})

	t.Run("dashes for numeric-looking strings", func(t *testing.T) {
		assert.Equal(t, "----", FormatInt(NumberFromAny("12"), 4))
	})

	t.Run("dashes for NaN and infinities", func(t *testing.T) {
		assert.Equal(t, "----", FormatInt(NumberFromAny(math.NaN()), 4))
		assert.Equal(t, "----", FormatInt(Float(math.Inf(1)), 4))
		assert.Equal(t, "----", FormatInt(NoNumber, 4))
	})

	t.Run("zero padding for numbers", func(t *testing.T) {
		assert.Equal(t, "0012", FormatInt(NumberFromAny(12), 4))
		assert.Equal(t, "0012", FormatInt(Int(12), 4))
		assert.Equal(t, "0000", FormatInt(Int(0), 4))
		assert.Equal(t, "0007", FormatInt(NumberFromAny(uint8(7)), 4))
	})

	t.Run("integer part only", func(t *testing.T) {
		assert.Equal(t, "0012", FormatInt(Float(12.9), 4))
		assert.Equal(t, "0000", FormatInt(Float(math.Copysign(0, -1)), 4))
	})

	t.Run("negative numbers render dashes", func(t *testing.T) {
		assert.Equal(t, "----", FormatInt(Int(-3), 4))
		assert.Equal(t, "----", FormatInt(Float(-0.5), 4))
	})

	t.Run("wider numbers overflow instead of truncating", func(t *testing.T) {
		assert.Equal(t, "12345", FormatInt(Int(12345), 4))
		assert.Equal(t, "1234", FormatInt(Int(1234), 4))
	})

	t.Run("non-positive width acts as one column", func(t *testing.T) {
		assert.Equal(t, "-", FormatInt(NoNumber, 0))
		assert.Equal(t, "7", FormatInt(Int(7), -1))
	})
}

func TestNumberIntValue(t *testing.T) {
	n, ok := Float(12.7).IntValue()
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = NoNumber.IntValue()
	assert.False(t, ok)

	n, ok = Float(1e30).IntValue()
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt32, n)
}

func TestFormatIntExactIntegers(t *testing.T) {
	assert.Equal(t, "9007199254740993", FormatInt(Int(9007199254740993), 4))
	assert.Equal(t, "9223372036854775807", FormatInt(NumberFromAny(int64(math.MaxInt64)), 4))
	assert.Equal(t, "----", FormatInt(NumberFromAny(int64(-1)), 4))
}
