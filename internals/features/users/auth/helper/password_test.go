package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin")
	require.NoError(t, err)
	assert.NotEqual(t, "admin", hash)

	assert.True(t, CheckPassword(hash, "admin"))
	assert.False(t, CheckPassword(hash, "Admin"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordRejectsPlaintextColumn(t *testing.T) {
	// A stored value that is not a bcrypt hash never matches.
	assert.False(t, CheckPassword("admin", "admin"))
}
