package interfaces

import "errors"

// Configuration errors
var (
	ErrConfigPathUnset          = errors.New("config path environment variable is not set")
	ErrConfigUnreadable         = errors.New("config file could not be read")
	ErrConfigMalformed          = errors.New("config file could not be parsed")
	ErrUnsupportedConfigVersion = errors.New("invalid config version used, please upgrade to hpos-config v2")
	ErrInvalidDeviceKey         = errors.New("device key could not be derived from config")
)

// Identity errors
var (
	ErrNetworkIdentityUnavailable = errors.New("network identity unavailable")
)

// Transport errors
var (
	ErrRequestBuild     = errors.New("could not build request")
	ErrTransport        = errors.New("request failed")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrResponseDecode   = errors.New("could not decode response")
)

var failureKinds = []struct {
	err  error
	kind string
}{
	{ErrConfigPathUnset, "config-path-unset"},
	{ErrConfigUnreadable, "config-unreadable"},
	{ErrConfigMalformed, "config-malformed"},
	{ErrUnsupportedConfigVersion, "config-version"},
	{ErrInvalidDeviceKey, "device-key"},
	{ErrNetworkIdentityUnavailable, "network-identity"},
	{ErrRequestBuild, "request-build"},
	{ErrTransport, "transport"},
	{ErrUnexpectedStatus, "status"},
	{ErrResponseDecode, "response-decode"},
}

// FailureKind returns a short, stable name for the class of err, or "unknown".
func FailureKind(err error) string {
	if err == nil {
		return ""
	}
	for _, fk := range failureKinds {
		if errors.Is(err, fk.err) {
			return fk.kind
		}
	}
	return "unknown"
}
