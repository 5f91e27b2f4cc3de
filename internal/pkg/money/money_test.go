package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.50", Format(1250))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "0.05", Format(5))
	assert.Equal(t, "249.00", Format(24900))
	assert.Equal(t, "-3.75", Format(-375))
}

func TestFormatSAR(t *testing.T) {
	assert.Equal(t, "110.00 SAR", FormatSAR(11000))
}
