// Package zerotier resolves the device's network identity from the local
// ZeroTier One installation.
//
// The ZeroTier service stores its identity as "address:0:publickey" (public
// file) or "address:0:publickey:privatekey" (secret file). Only the 10 hex digit
// address is used; it is re-read on every call.
package zerotier
