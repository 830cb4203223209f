package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	// Local and international spellings of the same Pakistani mobile
	// number must normalize to one canonical form.
	local, err := NormalizePhone("0300 1234567", "PK")
	require.NoError(t, err)
	international, err := NormalizePhone("+92 300 1234567", "PK")
	require.NoError(t, err)
	assert.Equal(t, "+923001234567", local)
	assert.Equal(t, local, international)
}

func TestNormalizePhoneRejectsGarbage(t *testing.T) {
	_, err := NormalizePhone("", "PK")
	assert.Error(t, err)

	_, err = NormalizePhone("12", "PK")
	assert.Error(t, err)

	_, err = NormalizePhone("not a number", "PK")
	assert.Error(t, err)
}
