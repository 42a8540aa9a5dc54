package authclient

import (
	"context"

	"github.com/holo-host/holo-auth/api"
	"github.com/holo-host/holo-auth/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockAttestor implements a mock api.Attestor for testing.
type MockAttestor struct {
	mock.Mock
}

func (m *MockAttestor) SubmitChallenge(ctx context.Context, cfg interfaces.Config) (*api.ChallengeResponse, error) {
	args := m.Called(ctx, cfg)
	resp, _ := args.Get(0).(*api.ChallengeResponse)
	return resp, args.Error(1)
}

func (m *MockAttestor) SubmitRegistration(ctx context.Context, cfg interfaces.Config) (*api.RegistrationOutcome, error) {
	args := m.Called(ctx, cfg)
	outcome, _ := args.Get(0).(*api.RegistrationOutcome)
	return outcome, args.Error(1)
}

// MockIdentityResolver implements a mock interfaces.NetworkIdentityResolver for testing.
type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) Address() (interfaces.ZeroTierAddress, error) {
	args := m.Called()
	return args.Get(0).(interfaces.ZeroTierAddress), args.Error(1)
}
