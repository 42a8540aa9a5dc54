/*
Package api defines the wire types and client settings shared by the device
attestation client.

The attestation flow talks to two services:

1. Challenge service - receives the admin email, the device's holochain agent
id and its ZeroTier address, and answers with the id of the Postmark message it
sent to the admin.
2. Registration service - receives the registration code and agent key, and
answers with a membrane proof or a structured rejection.

The HTTP implementation of Attestor lives in the authclient subpackage.
*/
package api
