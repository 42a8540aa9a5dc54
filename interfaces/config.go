package interfaces

import (
	"encoding/json"
	"fmt"

	"github.com/holo-host/holo-auth/cryptoutils"
)

// Config is the versioned HPOS identity configuration.
// It is a closed union: the only implementations are *ConfigV1 and *ConfigV2.
type Config interface {
	// HoloportPublicKey derives the device's public identity.
	HoloportPublicKey() (AgentID, error)

	versionTag() string
}

// Admin identifies the administrator account the device is bound to.
type Admin struct {
	Email     string `json:"email"`
	PublicKey string `json:"public_key"`
}

// Settings holds the per-device settings shared by all config versions.
type Settings struct {
	Admin Admin `json:"admin"`
}

// ConfigV1 is the legacy config generation. It cannot be used for attestation.
type ConfigV1 struct {
	// Seed is the base64 encoded ed25519 seed of the device key
	Seed     string   `json:"seed"`
	Settings Settings `json:"settings"`
}

// ConfigV2 carries everything needed for attestation.
type ConfigV2 struct {
	// DeviceBundle is the base64 encoded root key material
	DeviceBundle string `json:"device_bundle"`

	// DerivationPath selects the device key derived from DeviceBundle
	DerivationPath string `json:"derivation_path"`

	// RegistrationCode is the one-time code issued to the administrator
	RegistrationCode string   `json:"registration_code"`
	Settings         Settings `json:"settings"`
}

const (
	configTagV1 = "v1"
	configTagV2 = "v2"
)

func (c *ConfigV1) versionTag() string { return configTagV1 }
func (c *ConfigV2) versionTag() string { return configTagV2 }

func (c *ConfigV1) HoloportPublicKey() (AgentID, error) {
	key, err := cryptoutils.HoloportKeyFromSeed(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeviceKey, err)
	}
	return key, nil
}

func (c *ConfigV2) HoloportPublicKey() (AgentID, error) {
	key, err := cryptoutils.DeriveHoloportKey(c.DeviceBundle, c.DerivationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeviceKey, err)
	}
	return key, nil
}

// AdminEmail returns the administrator email.
func (c *ConfigV2) AdminEmail() string {
	return c.Settings.Admin.Email
}

// RequireV2 returns the V2 variant of c, or ErrUnsupportedConfigVersion.
func RequireV2(c Config) (*ConfigV2, error) {
	switch cfg := c.(type) {
	case *ConfigV2:
		if cfg == nil {
			return nil, fmt.Errorf("%w: nil v2 config", ErrConfigMalformed)
		}
		return cfg, nil
	case *ConfigV1:
		return nil, ErrUnsupportedConfigVersion
	case nil:
		return nil, fmt.Errorf("%w: no config", ErrConfigMalformed)
	default:
		return nil, fmt.Errorf("%w: unknown config type %T", ErrUnsupportedConfigVersion, c)
	}
}

// ParseConfig decodes an externally tagged config document, e.g. {"v2": {...}}.
func ParseConfig(data []byte) (Config, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one version tag, got %d", ErrConfigMalformed, len(tagged))
	}

	for tag, body := range tagged {
		switch tag {
		case configTagV1:
			var cfg ConfigV1
			if err := json.Unmarshal(body, &cfg); err != nil {
				return nil, fmt.Errorf("%w: v1: %w", ErrConfigMalformed, err)
			}
			return &cfg, nil
		case configTagV2:
			var cfg ConfigV2
			if err := json.Unmarshal(body, &cfg); err != nil {
				return nil, fmt.Errorf("%w: v2: %w", ErrConfigMalformed, err)
			}
			return &cfg, nil
		default:
			return nil, fmt.Errorf("%w: unknown version tag %q", ErrConfigMalformed, tag)
		}
	}

	// unreachable, len(tagged) == 1
	return nil, ErrConfigMalformed
}

// MarshalConfig encodes c in the tagged form accepted by ParseConfig.
func MarshalConfig(c Config) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: no config", ErrConfigMalformed)
	}
	return json.Marshal(map[string]Config{c.versionTag(): c})
}
