package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher()
	hashed, err := h.Hash("Secret1!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret1!", hashed)
	require.True(t, strings.HasPrefix(hashed, "$2"), "expected bcrypt encoding, got %q", hashed)

	require.True(t, h.Verify("Secret1!", hashed))
	require.False(t, h.Verify("Secret2!", hashed))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher()
	a, err := h.Hash("Secret1!")
	require.NoError(t, err)
	b, err := h.Hash("Secret1!")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "two hashes of the same password must differ")
}

func TestVerifyMissingHash(t *testing.T) {
	// federated accounts store no hash; any password must fail quietly
	h := NewHasher()
	require.False(t, h.Verify("anything", ""))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher()
	require.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}
