// Package interfaces defines the core types shared across the attestation
// client: the versioned device config, the ZeroTier node address, the
// loader and resolver interfaces, and the error kinds every failure is
// classified into.
//
// # Config
//
// The device config is a closed union of ConfigV1 and ConfigV2, serialized
// as an externally tagged JSON document:
//
//	{"v2": {"device_bundle": "...", "derivation_path": "...", "registration_code": "...", "settings": {...}}}
//
// Only ConfigV2 can be used for attestation. RequireV2 is the single place
// that narrows a Config to it.
//
// # Errors
//
// Every failure wraps one of the sentinel errors in errors.go, and FailureKind
// maps it to the short name used in logs.
package interfaces
