package cryptoutils

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/multiformats/go-base36"
	"golang.org/x/crypto/argon2"
)

// ErrInvalidSeed is returned when key material cannot be turned into an ed25519 seed.
var ErrInvalidSeed = errors.New("invalid key seed")

// AgentID is the ed25519 public key identifying a device (its holochain agent).
type AgentID ed25519.PublicKey

// NewAgentID validates the key length and returns an AgentID.
func NewAgentID(pubkey []byte) (AgentID, error) {
	if len(pubkey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid agent public key length %d", len(pubkey))
	}
	id := make(AgentID, ed25519.PublicKeySize)
	copy(id, pubkey)
	return id, nil
}

// AgentIDFromBase36 parses the textual form produced by String.
func AgentIDFromBase36(s string) (AgentID, error) {
	raw, err := base36.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base36 agent id: %w", err)
	}
	return NewAgentID(raw)
}

// String returns the lowercase base-36 encoding used on the wire.
func (id AgentID) String() string {
	return base36.EncodeToStringLc(id)
}

// MarshalText makes AgentID serialize as its base-36 string in JSON.
func (id AgentID) MarshalText() ([]byte, error) {
	if len(id) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid agent public key length %d", len(id))
	}
	return []byte(id.String()), nil
}

// PublicKey returns the key as an ed25519.PublicKey.
func (id AgentID) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(id)
}

// HoloportKeyFromSeed derives the device key from a base64 encoded 32-byte ed25519 seed.
func HoloportKeyFromSeed(seedB64 string) (AgentID, error) {
	seed, err := base64.StdEncoding.DecodeString(seedB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidSeed, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	return NewAgentID(priv.Public().(ed25519.PublicKey))
}

// DeriveHoloportKey derives the device key from a base64 encoded device bundle
// and a derivation path. The device seed is Argon2id(bundle, "HPOS-DEVICE-KEY-"||path).
func DeriveHoloportKey(deviceBundleB64 string, derivationPath string) (AgentID, error) {
	bundle, err := base64.StdEncoding.DecodeString(deviceBundleB64)
	if err != nil {
		return nil, fmt.Errorf("%w: device bundle: %w", ErrInvalidSeed, err)
	}
	if len(bundle) == 0 {
		return nil, fmt.Errorf("%w: empty device bundle", ErrInvalidSeed)
	}
	if derivationPath == "" {
		return nil, fmt.Errorf("%w: empty derivation path", ErrInvalidSeed)
	}

	salt := append([]byte("HPOS-DEVICE-KEY-"), derivationPath...)

	// Parameters: time=1, memory=64*1024, threads=4, keyLen=32
	seed := argon2.IDKey(bundle, salt, 1, 64*1024, 4, ed25519.SeedSize)

	priv := ed25519.NewKeyFromSeed(seed)
	return NewAgentID(priv.Public().(ed25519.PublicKey))
}
