package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatYen(t *testing.T) {
	assert.Equal(t, "¥0", FormatYen(0))
	assert.Equal(t, "¥150", FormatYen(150))
	assert.Equal(t, "¥12,800", FormatYen(12800))
	assert.Equal(t, "¥1,234,567", FormatYen(1234567))
	assert.Equal(t, "-¥245,000", FormatYen(-245000))
}
