package flags

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/holo-host/holo-auth/api"
	"github.com/holo-host/holo-auth/common"
	"github.com/holo-host/holo-auth/instanceutils/zerotier"
	"github.com/urfave/cli/v2"
)

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlagName)
	logDebug := cCtx.Bool(LogDebugFlagName)
	logUID := cCtx.Bool(LogUidFlagName)
	logService := cCtx.String(LogServiceFlagName)

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
		Output:  cCtx.App.ErrWriter,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

// ConfigureClient resolves the client settings: defaults, then the settings
// file if given, then any flag or env var that was explicitly set.
func ConfigureClient(cCtx *cli.Context, logger *slog.Logger) (*api.ClientConfig, error) {
	cfg := api.DefaultClientConfig()
	if settingsFile := cCtx.String(SettingsFileFlagName); settingsFile != "" {
		var err error
		cfg, err = api.LoadClientConfigFile(settingsFile)
		if err != nil {
			return nil, err
		}
	}

	if cCtx.IsSet(ChallengeURLFlagName) || cfg.ChallengeURL == "" {
		cfg.ChallengeURL = cCtx.String(ChallengeURLFlagName)
	}
	if cCtx.IsSet(RegistrationURLFlagName) || cfg.RegistrationURL == "" {
		cfg.RegistrationURL = cCtx.String(RegistrationURLFlagName)
	}
	if cCtx.IsSet(ZeroTierIdentityName) || cfg.ZeroTierIdentityPath == "" {
		cfg.ZeroTierIdentityPath = cCtx.String(ZeroTierIdentityName)
	}
	if cCtx.IsSet(BackoffBaseFlagName) {
		cfg.BackoffBase = cCtx.Duration(BackoffBaseFlagName)
	}
	if cCtx.IsSet(RequestTimeoutFlagName) {
		cfg.RequestTimeout = cCtx.Duration(RequestTimeoutFlagName)
	}
	cfg.Log = logger

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}
	return cfg, nil
}

const (
	ChallengeURLFlagName    = "challenge-url"
	RegistrationURLFlagName = "registration-url"
	ZeroTierIdentityName    = "zerotier-identity"
	BackoffBaseFlagName     = "backoff-base"
	RequestTimeoutFlagName  = "request-timeout"
	SettingsFileFlagName    = "settings-file"

	LogJsonFlagName    = "log-json"
	LogDebugFlagName   = "log-debug"
	LogUidFlagName     = "log-uid"
	LogServiceFlagName = "log-service"
)

// ClientFlags returns fresh client flags. urfave/cli stores parse state on the
// flag values, so every App gets its own set.
func ClientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ChallengeURLFlagName,
			Value:   api.DefaultChallengeURL,
			Usage:   "device challenge endpoint",
			EnvVars: []string{"CHALLENGE_URL"},
		},
		&cli.StringFlag{
			Name:    RegistrationURLFlagName,
			Value:   api.DefaultRegistrationURL,
			Usage:   "host registration endpoint",
			EnvVars: []string{"REGISTRATION_URL"},
		},
		&cli.StringFlag{
			Name:    ZeroTierIdentityName,
			Value:   zerotier.DefaultIdentityPath,
			Usage:   "path of the ZeroTier identity file to read the node address from",
			EnvVars: []string{"ZEROTIER_IDENTITY_PATH"},
		},
		&cli.DurationFlag{
			Name:    BackoffBaseFlagName,
			Value:   api.DefaultBackoffBase,
			Usage:   "wait after the first failed attempt of a phase, doubled after every further failure",
			EnvVars: []string{"BACKOFF_BASE"},
		},
		&cli.DurationFlag{
			Name:    RequestTimeoutFlagName,
			Value:   0,
			Usage:   "timeout of a single HTTP request, 0 leaves it to the transport",
			EnvVars: []string{"REQUEST_TIMEOUT"},
		},
		&cli.StringFlag{
			Name:    SettingsFileFlagName,
			Usage:   "optional YAML file with client settings, explicit flags take precedence",
			EnvVars: []string{"HOLO_AUTH_SETTINGS"},
		},
	}
}

// LogFlags returns fresh logging flags.
func LogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  LogJsonFlagName,
			Value: false,
			Usage: "log in JSON format",
		},
		&cli.BoolFlag{
			Name:  LogDebugFlagName,
			Value: false,
			Usage: "log debug messages",
		},
		&cli.BoolFlag{
			Name:  LogUidFlagName,
			Value: false,
			Usage: "generate a uuid and add to all log messages",
		},
		&cli.StringFlag{
			Name:  LogServiceFlagName,
			Value: "holo-auth",
			Usage: "add 'service' tag to logs",
		},
	}
}
