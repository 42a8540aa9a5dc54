package zerotier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/holo-host/holo-auth/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIdentity = "89e92ceee5:0:9e2cb2b44d6ad1b2fab3ac0a98da9e1b2a5c4d0bd1ba1c3df0ee9ea0e6a6b67a0cd7f0c7b7ab0b5d4f1cfa5b0c1c0cd7c6c2c7f5fd2b0e3ad4b4e4b6bfa6e2a8"

func TestParseIdentity(t *testing.T) {
	addr, err := ParseIdentity(testIdentity + "\n")
	require.NoError(t, err)
	assert.Equal(t, "89e92ceee5", addr.String())

	// Secret identities carry a fourth field
	addr, err = ParseIdentity(testIdentity + ":deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "89e92ceee5", addr.String())

	for _, bad := range []string{
		"",
		"89e92ceee5",
		"89e92ceee5:1:abcd",
		"89e92ceee5:0:",
		"nothex1234:0:abcd",
	} {
		_, err := ParseIdentity(bad)
		assert.Error(t, err, bad)
	}
}

func TestIdentityResolver_Address(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.public")
	resolver := NewIdentityResolver(path)

	_, err := resolver.Address()
	assert.ErrorIs(t, err, interfaces.ErrNetworkIdentityUnavailable)

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
	_, err = resolver.Address()
	assert.ErrorIs(t, err, interfaces.ErrNetworkIdentityUnavailable)

	require.NoError(t, os.WriteFile(path, []byte(testIdentity), 0644))
	addr, err := resolver.Address()
	require.NoError(t, err)
	assert.Equal(t, "89e92ceee5", addr.String())

	assert.Equal(t, DefaultIdentityPath, NewIdentityResolver("").Path)
}
