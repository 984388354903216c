package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPINRoundTrip(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckPIN(hash, "1234"))
	assert.False(t, CheckPIN(hash, "4321"))
	assert.False(t, CheckPIN("", "1234"))
}
