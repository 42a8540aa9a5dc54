package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/holo-host/holo-auth/api"
	"github.com/holo-host/holo-auth/interfaces"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 1 << 20

// Client implements api.Attestor against the remote challenge and registration services.
type Client struct {
	// HTTPClient is shared by every request, http.DefaultClient if nil
	HTTPClient *http.Client

	ChallengeURL    string
	RegistrationURL string

	// Identity resolves the ZeroTier address for challenge payloads
	Identity interfaces.NetworkIdentityResolver

	Log *slog.Logger
}

// NewClient creates a client for the endpoints in cfg.
func NewClient(cfg *api.ClientConfig, httpClient *http.Client, identity interfaces.NetworkIdentityResolver) *Client {
	return &Client{
		HTTPClient:      httpClient,
		ChallengeURL:    cfg.ChallengeURL,
		RegistrationURL: cfg.RegistrationURL,
		Identity:        identity,
		Log:             cfg.Log,
	}
}

// SubmitChallenge sends the device challenge and returns the notification message id.
// Any non-2xx status is a failure.
func (c *Client) SubmitChallenge(ctx context.Context, cfg interfaces.Config) (*api.ChallengeResponse, error) {
	v2, err := interfaces.RequireV2(cfg)
	if err != nil {
		return nil, err
	}

	agentID, err := v2.HoloportPublicKey()
	if err != nil {
		return nil, err
	}

	if c.Identity == nil {
		return nil, fmt.Errorf("%w: no resolver configured", interfaces.ErrNetworkIdentityUnavailable)
	}
	address, err := c.Identity.Address()
	if err != nil {
		if !errors.Is(err, interfaces.ErrNetworkIdentityUnavailable) {
			err = fmt.Errorf("%w: %w", interfaces.ErrNetworkIdentityUnavailable, err)
		}
		return nil, err
	}

	payload := api.ChallengePayload{
		Email:            v2.AdminEmail(),
		HolochainAgentID: agentID,
		ZeroTierAddress:  address,
	}

	status, body, err := c.postJSON(ctx, c.ChallengeURL, payload)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: challenge endpoint returned %d: %s", interfaces.ErrUnexpectedStatus, status, string(body))
	}

	var parsed struct {
		MessageID *uuid.UUID `json:"MessageID"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: challenge response: %w", interfaces.ErrResponseDecode, err)
	}
	if parsed.MessageID == nil {
		return nil, fmt.Errorf("%w: challenge response has no MessageID", interfaces.ErrResponseDecode)
	}

	c.log().Info("Postmark message ID", "message_id", parsed.MessageID.String())

	return &api.ChallengeResponse{MessageID: *parsed.MessageID}, nil
}

// SubmitRegistration registers the device as a host.
// A well-formed rejection is logged and returned in the outcome with a nil error.
func (c *Client) SubmitRegistration(ctx context.Context, cfg interfaces.Config) (*api.RegistrationOutcome, error) {
	v2, err := interfaces.RequireV2(cfg)
	if err != nil {
		return nil, err
	}

	agentID, err := v2.HoloportPublicKey()
	if err != nil {
		return nil, err
	}

	payload := api.RegistrationPayload{
		RegistrationCode: v2.RegistrationCode,
		AgentPubKey:      agentID,
		Email:            v2.AdminEmail(),
		Role:             api.RoleHost,
	}

	status, body, err := c.postJSON(ctx, c.RegistrationURL, payload)
	if err != nil {
		return nil, err
	}

	if isSuccess(status) {
		var parsed struct {
			MemProof *string `json:"mem_proof"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("%w: registration response: %w", interfaces.ErrResponseDecode, err)
		}
		if parsed.MemProof == nil {
			return nil, fmt.Errorf("%w: registration response has no mem_proof", interfaces.ErrResponseDecode)
		}

		c.log().Info("registration accepted", "agent", agentID.String())
		c.log().Debug("registration acknowledgement", "mem_proof", *parsed.MemProof)

		return &api.RegistrationOutcome{
			Ack:        &api.RegistrationAck{MemProof: *parsed.MemProof},
			StatusCode: status,
		}, nil
	}

	var parsed struct {
		Error *string `json:"error"`
		Info  *string `json:"info"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: registration endpoint returned %d: %s", interfaces.ErrResponseDecode, status, string(body))
	}
	if parsed.Error == nil || parsed.Info == nil {
		return nil, fmt.Errorf("%w: registration endpoint returned %d without error details: %s", interfaces.ErrResponseDecode, status, string(body))
	}

	rejection := &api.RegistrationRejection{Error: *parsed.Error, Info: *parsed.Info}
	c.log().Error("Registration Error", "status", status, "error", rejection.Error, "info", rejection.Info)

	return &api.RegistrationOutcome{
		Rejection:  rejection,
		StatusCode: status,
	}, nil
}

// postJSON sends payload as JSON and returns the status code and the (bounded) body.
// The connection is released before returning.
func (c *Client) postJSON(ctx context.Context, url string, payload any) (int, []byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: could not marshal payload: %w", interfaces.ErrRequestBuild, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: could not initialize request: %w", interfaces.ErrRequestBuild, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: could not request %s: %w", interfaces.ErrTransport, url, err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: could not read response from %s: %w", interfaces.ErrTransport, url, err)
	}

	return resp.StatusCode, body, nil
}

func (c *Client) log() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
