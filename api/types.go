package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/holo-host/holo-auth/interfaces"
)

// RoleHost is the only role a device registers with.
const RoleHost = "host"

// Attestor submits the two attestation requests of the bootstrap workflow.
type Attestor interface {
	// SubmitChallenge proves the device key and network address to the challenge service.
	// Returns:
	//   - The challenge service's acknowledgement carrying the notification message id
	//   - Error for any config, identity, transport or response failure
	SubmitChallenge(ctx context.Context, cfg interfaces.Config) (*ChallengeResponse, error)

	// SubmitRegistration registers the device key as a host with the registration service.
	// Returns:
	//   - Outcome holding either the acknowledgement or a well-formed server rejection
	//   - Error for any config, transport or malformed response failure
	SubmitRegistration(ctx context.Context, cfg interfaces.Config) (*RegistrationOutcome, error)
}

// ChallengePayload is sent to the challenge endpoint.
type ChallengePayload struct {
	// Email is the administrator's email, the challenge is delivered there
	Email string `json:"email"`

	// HolochainAgentID is the device public key, base-36 encoded
	HolochainAgentID interfaces.AgentID `json:"holochain_agent_id"`

	// ZeroTierAddress is the device's network address
	ZeroTierAddress interfaces.ZeroTierAddress `json:"zerotier_address"`
}

// ChallengeResponse is returned by the challenge endpoint.
type ChallengeResponse struct {
	// MessageID identifies the notification sent to the administrator
	MessageID uuid.UUID `json:"MessageID"`
}

// RegistrationPayload is sent to the registration endpoint.
type RegistrationPayload struct {
	RegistrationCode string             `json:"registration_code"`
	AgentPubKey      interfaces.AgentID `json:"agent_pub_key"`
	Email            string             `json:"email"`
	Role             string             `json:"role"`
}

// RegistrationAck is the registration endpoint's success body.
type RegistrationAck struct {
	// MemProof is the membrane proof issued for the agent
	MemProof string `json:"mem_proof"`
}

// RegistrationRejection is the registration endpoint's error body.
type RegistrationRejection struct {
	Error string `json:"error"`
	Info  string `json:"info"`
}

// RegistrationOutcome holds exactly one of Ack or Rejection.
type RegistrationOutcome struct {
	Ack       *RegistrationAck
	Rejection *RegistrationRejection

	// StatusCode is the HTTP status the outcome was read from
	StatusCode int
}

// Accepted reports whether the registration service accepted the device.
func (o *RegistrationOutcome) Accepted() bool {
	return o != nil && o.Ack != nil
}
