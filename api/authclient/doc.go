// Package authclient implements the device side of the two HPOS attestation
// exchanges.
//
// SubmitChallenge posts the device's agent id, ZeroTier address and the
// administrator email to the challenge service, which mails the administrator
// and answers with the notification's message id.
//
// SubmitRegistration posts the registration code, agent id and administrator
// email to the registration service, registering the device as a "host".
// A structured rejection from the registration service ({error, info}) is
// logged and reported as a handled outcome rather than an error; only
// transport failures and malformed responses are returned as errors.
//
// Both operations reject V1 configurations before touching the network.
// A single *http.Client built by NewHTTPClient is shared by both operations.
package authclient
