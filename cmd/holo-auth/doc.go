// Package main (cmd/holo-auth) attests an HPOS device to the Holo
// infrastructure on boot.
//
// It runs two phases in order. The challenge phase posts the admin email, the
// device's holochain agent id and its ZeroTier address to the challenge
// endpoint and logs the returned Postmark message id. The registration phase
// posts the registration code and agent key to the registration endpoint and
// logs the membrane proof or the rejection reason. Each phase is retried with
// exponential backoff until it succeeds or the process is stopped.
//
// The device config is read from the file named by HPOS_CONFIG_PATH on every
// attempt, so a config written after startup is picked up.
//
// Example usage:
//
//	HPOS_CONFIG_PATH=/run/hpos-config.json holo-auth --log-debug
//
//	holo-auth --settings-file /etc/holo-auth.yaml --registration-url http://localhost:4000/register-user/
package main
