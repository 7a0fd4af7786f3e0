// Package client talks to a registry node.
//
// Client is the transport-agnostic contract used by the CLI; GRPCClient
// implements it over the tokenregister.v1.Registry gRPC service with the
// JSON codec. An operator access token, when set, is attached to every call
// by a unary interceptor.
//
// # Error Handling
//
// Status messages that name a registry error are turned back into the
// matching sentinel from internal/common, so callers can use errors.Is
// (for example common.ErrorUnauthorized or common.ErrAlreadyRegistered).
// Connectivity failures map to ErrUnavailable, rejected access tokens to
// ErrUnauthorized.
package client
