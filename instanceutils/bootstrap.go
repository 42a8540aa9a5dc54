package instanceutils

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/holo-host/holo-auth/api"
	"github.com/holo-host/holo-auth/interfaces"
	"github.com/holo-host/holo-auth/retry"
)

const (
	PhaseChallenge    = "challenge"
	PhaseRegistration = "registration"
)

// Bootstrapper runs the challenge phase and then the registration phase,
// retrying each until it succeeds.
type Bootstrapper struct {
	// Config is consulted at the start of every attempt
	Config interfaces.ConfigLoader

	Attestor api.Attestor

	// BackoffBase is the first wait of each phase, retry.DefaultBase if zero
	BackoffBase time.Duration

	Log *slog.Logger

	// Timer overrides the backoff timer, used by tests
	Timer backoff.Timer
}

// Result is what both phases produced.
type Result struct {
	MessageID    uuid.UUID
	Registration *api.RegistrationOutcome
}

// Run executes both phases in order. It only returns an error when ctx is done.
func (b *Bootstrapper) Run(ctx context.Context) (*Result, error) {
	challenge, err := b.Challenge(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s phase: %w", PhaseChallenge, err)
	}

	registration, err := b.Register(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s phase: %w", PhaseRegistration, err)
	}

	return &Result{
		MessageID:    challenge.MessageID,
		Registration: registration,
	}, nil
}

// Challenge retries the challenge attestation until it succeeds.
func (b *Bootstrapper) Challenge(ctx context.Context) (*api.ChallengeResponse, error) {
	b.log().Info("starting phase", "phase", PhaseChallenge)
	return retry.Do(ctx, b.policy(PhaseChallenge), func(ctx context.Context) (*api.ChallengeResponse, error) {
		cfg, err := b.Config.Load()
		if err != nil {
			return nil, err
		}
		return b.Attestor.SubmitChallenge(ctx, cfg)
	})
}

// Register retries the registration attestation until it succeeds.
// A rejection by the registration service counts as completion.
func (b *Bootstrapper) Register(ctx context.Context) (*api.RegistrationOutcome, error) {
	b.log().Info("starting phase", "phase", PhaseRegistration)
	return retry.Do(ctx, b.policy(PhaseRegistration), func(ctx context.Context) (*api.RegistrationOutcome, error) {
		cfg, err := b.Config.Load()
		if err != nil {
			return nil, err
		}
		return b.Attestor.SubmitRegistration(ctx, cfg)
	})
}

func (b *Bootstrapper) policy(phase string) retry.Policy {
	return retry.Policy{
		Name:  phase,
		Base:  b.BackoffBase,
		Log:   b.log(),
		Timer: b.Timer,
	}
}

func (b *Bootstrapper) log() *slog.Logger {
	if b.Log == nil {
		return slog.Default()
	}
	return b.Log
}
