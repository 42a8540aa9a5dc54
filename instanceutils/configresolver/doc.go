// Package configresolver loads the HPOS identity configuration of the device.
//
// The configuration file location is taken from an environment variable
// (HPOS_CONFIG_PATH by default). The file is a JSON document tagged with its
// schema version:
//
//	{"v2": {"device_bundle": "...", "derivation_path": "...", "registration_code": "...",
//	        "settings": {"admin": {"email": "...", "public_key": "..."}}}}
//
// The loader does not cache anything: every Load re-reads the environment and
// the file, so edits made between bootstrap attempts are picked up.
//
// # Usage
//
//	loader := configresolver.NewEnvLoader(configresolver.DefaultConfigPathEnv)
//	cfg, err := loader.Load()
//	if err != nil {
//		return err
//	}
//	v2, err := interfaces.RequireV2(cfg)
package configresolver
