package cryptoutils

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestHoloportKeyFromSeed(t *testing.T) {
	seed := testSeed()
	expected := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

	id, err := HoloportKeyFromSeed(base64.StdEncoding.EncodeToString(seed))
	require.NoError(t, err)
	assert.Equal(t, expected, id.PublicKey())

	_, err = HoloportKeyFromSeed("not base64!")
	assert.ErrorIs(t, err, ErrInvalidSeed)

	_, err = HoloportKeyFromSeed(base64.StdEncoding.EncodeToString(seed[:16]))
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDeriveHoloportKey(t *testing.T) {
	bundle := base64.StdEncoding.EncodeToString(testSeed())

	first, err := DeriveHoloportKey(bundle, "m/0")
	require.NoError(t, err)
	again, err := DeriveHoloportKey(bundle, "m/0")
	require.NoError(t, err)
	other, err := DeriveHoloportKey(bundle, "m/1")
	require.NoError(t, err)

	// Derivation is deterministic and path dependent
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)

	_, err = DeriveHoloportKey("", "m/0")
	assert.ErrorIs(t, err, ErrInvalidSeed)
	_, err = DeriveHoloportKey(bundle, "")
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestAgentIDBase36(t *testing.T) {
	id, err := HoloportKeyFromSeed(base64.StdEncoding.EncodeToString(testSeed()))
	require.NoError(t, err)

	encoded := id.String()
	assert.Regexp(t, "^[0-9a-z]+$", encoded)

	decoded, err := AgentIDFromBase36(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)

	// Leading zero bytes map to '0' digits
	raw := make([]byte, ed25519.PublicKeySize)
	raw[len(raw)-1] = 35
	small, err := NewAgentID(raw)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0", 31)+"z", small.String())

	jsonBytes, err := json.Marshal(struct {
		ID AgentID `json:"id"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+encoded+`"}`, string(jsonBytes))

	_, err = NewAgentID([]byte{1, 2, 3})
	assert.Error(t, err)
}
