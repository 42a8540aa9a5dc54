// Package cryptoutils derives the device's ed25519 identity key.
//
// Two derivations exist, one per config generation:
//
//   - HoloportKeyFromSeed: the key is built directly from a base64 ed25519 seed.
//   - DeriveHoloportKey: the seed is stretched from the device bundle and the
//     derivation path with Argon2id, then used as an ed25519 seed.
//
// The resulting public key is an AgentID, rendered as lowercase base36.
package cryptoutils
