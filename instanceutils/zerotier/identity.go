package zerotier

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/holo-host/holo-auth/interfaces"
)

// DefaultIdentityPath is where zerotier-one keeps its public identity on Linux.
const DefaultIdentityPath = "/var/lib/zerotier-one/identity.public"

// IdentityResolver implements interfaces.NetworkIdentityResolver from an identity file.
type IdentityResolver struct {
	// Path is the identity file to read, DefaultIdentityPath if empty
	Path string
}

// NewIdentityResolver creates a resolver for the identity file at path.
func NewIdentityResolver(path string) *IdentityResolver {
	if path == "" {
		path = DefaultIdentityPath
	}
	return &IdentityResolver{Path: path}
}

// Address reads the identity file and returns the node address.
func (r *IdentityResolver) Address() (interfaces.ZeroTierAddress, error) {
	path := r.Path
	if path == "" {
		path = DefaultIdentityPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return interfaces.ZeroTierAddress{}, fmt.Errorf("%w: %w", interfaces.ErrNetworkIdentityUnavailable, err)
	}

	addr, err := ParseIdentity(string(data))
	if err != nil {
		return interfaces.ZeroTierAddress{}, fmt.Errorf("%w: %s: %w", interfaces.ErrNetworkIdentityUnavailable, path, err)
	}
	return addr, nil
}

// ParseIdentity extracts the address from a serialized ZeroTier identity.
func ParseIdentity(identity string) (interfaces.ZeroTierAddress, error) {
	fields := strings.Split(strings.TrimSpace(identity), ":")
	if len(fields) < 3 {
		return interfaces.ZeroTierAddress{}, errors.New("malformed identity")
	}
	// Type 0 is the only identity type (C25519)
	if fields[1] != "0" {
		return interfaces.ZeroTierAddress{}, fmt.Errorf("unsupported identity type %q", fields[1])
	}
	if fields[2] == "" {
		return interfaces.ZeroTierAddress{}, errors.New("identity has no public key")
	}

	return interfaces.NewZeroTierAddressFromHex(fields[0])
}
