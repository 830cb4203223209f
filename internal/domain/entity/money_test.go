package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(12050), ToCents(120.50))
	assert.Equal(t, int64(0), ToCents(0))
	// Float artifacts must round, not truncate.
	assert.Equal(t, int64(1010), ToCents(10.1))
	assert.Equal(t, int64(5), ToCents(0.049999999999999996))
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, 120.50, FromCents(12050))
	assert.Equal(t, -3.75, FromCents(-375))
}
