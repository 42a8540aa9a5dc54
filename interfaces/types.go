package interfaces

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/holo-host/holo-auth/cryptoutils"
)

type AgentID = cryptoutils.AgentID

// ZeroTierAddress is the 40-bit ZeroTier node address of this device.
type ZeroTierAddress [5]byte

// NewZeroTierAddressFromHex parses a 10 character hex address.
func NewZeroTierAddressFromHex(addr string) (ZeroTierAddress, error) {
	clean := strings.ToLower(strings.TrimSpace(addr))
	if len(clean) != 10 {
		return ZeroTierAddress{}, errors.New("invalid zerotier address length: hex string must be 10 characters")
	}

	addrBytes, err := hex.DecodeString(clean)
	if err != nil {
		return ZeroTierAddress{}, fmt.Errorf("invalid hex format: %w", err)
	}

	var res ZeroTierAddress
	copy(res[:], addrBytes)

	// Addresses starting with 0xff are reserved
	if res[0] == 0xff || res == (ZeroTierAddress{}) {
		return ZeroTierAddress{}, fmt.Errorf("reserved zerotier address %s", clean)
	}
	return res, nil
}

// String returns the hex string representation of the address.
func (addr ZeroTierAddress) String() string {
	return hex.EncodeToString(addr[:])
}

// MarshalText makes the address serialize as its hex string in JSON.
func (addr ZeroTierAddress) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// ConfigLoader loads the device identity configuration.
// Implementations must read fresh state on every call.
type ConfigLoader interface {
	Load() (Config, error)
}

// NetworkIdentityResolver returns this device's network address from local system state.
type NetworkIdentityResolver interface {
	Address() (ZeroTierAddress, error)
}
