package hash_test

import (
	"testing"

	"storefront/internal/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_RoundTrip(t *testing.T) {
	hashed, err := hash.Password("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cret", hashed)

	assert.True(t, hash.Verify(hashed, "s3cret"))
	assert.False(t, hash.Verify(hashed, "wrong"))
}

func TestPassword_DistinctSalts(t *testing.T) {
	first, err := hash.Password("s3cret")
	require.NoError(t, err)
	second, err := hash.Password("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
