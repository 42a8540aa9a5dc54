// Package instanceutils runs the HPOS device bootstrap workflow.
//
// Bootstrapper sequences the two attestation phases:
//
//   - Challenge: prove the device key and ZeroTier address to the
//     challenge service, which notifies the administrator.
//   - Registration: register the device key as a host using the
//     registration code from the config.
//
// Each phase is retried on its own doubling backoff until it succeeds. Registration
// starts only after the challenge succeeded, and every attempt of either phase reads
// the configuration and the network identity afresh.
//
// # Subpackages
//
// - configresolver: loads the versioned HPOS config from the path in HPOS_CONFIG_PATH
// - zerotier: reads the ZeroTier node address from the local identity file
//
// # Usage
//
//	httpClient, err := authclient.NewHTTPClient(0)
//	attestor := authclient.NewClient(clientCfg, httpClient, zerotier.NewIdentityResolver(""))
//	b := &instanceutils.Bootstrapper{
//		Config:      configresolver.NewEnvLoader(configresolver.DefaultConfigPathEnv),
//		Attestor:    attestor,
//		BackoffBase: time.Second,
//		Log:         logger,
//	}
//	result, err := b.Run(ctx)
package instanceutils
