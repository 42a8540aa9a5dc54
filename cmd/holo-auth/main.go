package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/holo-host/holo-auth/api/authclient"
	"github.com/holo-host/holo-auth/cmd/flags"
	"github.com/holo-host/holo-auth/instanceutils"
	"github.com/holo-host/holo-auth/instanceutils/configresolver"
	"github.com/holo-host/holo-auth/instanceutils/zerotier"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "holo-auth",
		Usage: "Attest this device to the Holo challenge and registration services",
		Flags: slices.Concat(flags.ClientFlags(), flags.LogFlags()),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			cfg, err := flags.ConfigureClient(cCtx, logger)
			if err != nil {
				return err
			}

			httpClient, err := authclient.NewHTTPClient(cfg.RequestTimeout)
			if err != nil {
				return err
			}

			bootstrapper := &instanceutils.Bootstrapper{
				Config:      configresolver.NewEnvLoader(configresolver.DefaultConfigPathEnv),
				Attestor:    authclient.NewClient(cfg, httpClient, zerotier.NewIdentityResolver(cfg.ZeroTierIdentityPath)),
				BackoffBase: cfg.BackoffBase,
				Log:         logger,
			}

			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting holo-auth",
				"challenge_url", cfg.ChallengeURL,
				"registration_url", cfg.RegistrationURL,
				"backoff_base", cfg.BackoffBase)

			result, err := bootstrapper.Run(ctx)
			if err != nil {
				return err
			}

			logger.Info("device attestation complete",
				"message_id", result.MessageID.String(),
				"registered", result.Registration.Accepted())
			return nil
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
