package interfaces

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeedB64 = base64.StdEncoding.EncodeToString(make([]byte, ed25519.SeedSize))

func TestParseConfig(t *testing.T) {
	testCases := []struct {
		name      string
		doc       string
		expectErr error
		expectV2  bool
	}{
		{
			name:     "v2",
			doc:      fmt.Sprintf(`{"v2":{"device_bundle":%q,"derivation_path":"m/0","registration_code":"abc","settings":{"admin":{"email":"a@b.c","public_key":"pk"}}}}`, testSeedB64),
			expectV2: true,
		},
		{
			name: "v1",
			doc:  fmt.Sprintf(`{"v1":{"seed":%q,"settings":{"admin":{"email":"a@b.c","public_key":"pk"}}}}`, testSeedB64),
		},
		{
			name:      "not json",
			doc:       `{"v2":`,
			expectErr: ErrConfigMalformed,
		},
		{
			name:      "no tag",
			doc:       `{}`,
			expectErr: ErrConfigMalformed,
		},
		{
			name:      "two tags",
			doc:       `{"v1":{},"v2":{}}`,
			expectErr: ErrConfigMalformed,
		},
		{
			name:      "unknown tag",
			doc:       `{"v3":{}}`,
			expectErr: ErrConfigMalformed,
		},
		{
			name:      "wrong field type",
			doc:       `{"v2":{"registration_code":5}}`,
			expectErr: ErrConfigMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tc.doc))
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)

			v2, err := RequireV2(cfg)
			if tc.expectV2 {
				require.NoError(t, err)
				assert.Equal(t, "a@b.c", v2.AdminEmail())
				assert.Equal(t, "abc", v2.RegistrationCode)
			} else {
				assert.ErrorIs(t, err, ErrUnsupportedConfigVersion)
			}
		})
	}
}

func TestRequireV2(t *testing.T) {
	_, err := RequireV2(&ConfigV1{})
	assert.True(t, errors.Is(err, ErrUnsupportedConfigVersion))

	_, err = RequireV2(nil)
	assert.ErrorIs(t, err, ErrConfigMalformed)

	var nilV2 *ConfigV2
	_, err = RequireV2(nilV2)
	assert.ErrorIs(t, err, ErrConfigMalformed)

	cfg := &ConfigV2{RegistrationCode: "code"}
	v2, err := RequireV2(cfg)
	require.NoError(t, err)
	assert.Same(t, cfg, v2)
}

func TestMarshalConfigRoundTrip(t *testing.T) {
	original := &ConfigV2{
		DeviceBundle:     testSeedB64,
		DerivationPath:   "m/0",
		RegistrationCode: "code",
		Settings:         Settings{Admin: Admin{Email: "admin@example.com"}},
	}

	data, err := MarshalConfig(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"v2"`)

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestHoloportPublicKey(t *testing.T) {
	v1 := &ConfigV1{Seed: testSeedB64}
	key, err := v1.HoloportPublicKey()
	require.NoError(t, err)
	assert.Len(t, key, ed25519.PublicKeySize)

	v2 := &ConfigV2{DeviceBundle: testSeedB64, DerivationPath: "m/0"}
	key, err = v2.HoloportPublicKey()
	require.NoError(t, err)
	assert.Len(t, key, ed25519.PublicKeySize)

	_, err = (&ConfigV2{DeviceBundle: "%%%", DerivationPath: "m/0"}).HoloportPublicKey()
	assert.ErrorIs(t, err, ErrInvalidDeviceKey)
}

func TestZeroTierAddress(t *testing.T) {
	addr, err := NewZeroTierAddressFromHex("89E92CEEE5")
	require.NoError(t, err)
	assert.Equal(t, "89e92ceee5", addr.String())

	text, err := addr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "89e92ceee5", string(text))

	for _, bad := range []string{"", "89e92ceee", "89e92ceee5aa", "zze92ceee5", "ff00000001", "0000000000"} {
		_, err := NewZeroTierAddressFromHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "", FailureKind(nil))
	assert.Equal(t, "config-version", FailureKind(ErrUnsupportedConfigVersion))
	assert.Equal(t, "transport", FailureKind(fmt.Errorf("wrapped: %w", ErrTransport)))
	assert.Equal(t, "unknown", FailureKind(errors.New("other")))
}
