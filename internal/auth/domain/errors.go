package domain

import (
	"github.com/allisson/inventory/internal/errors"
)

// Credential errors returned by the verifier and the authorization gate.
var (
	// ErrMissingCredential indicates the request carried no credential at all.
	ErrMissingCredential = errors.Wrap(errors.ErrUnauthorized, "credential required")

	// ErrInvalidCredential indicates a credential that is malformed, badly signed,
	// signed with an unexpected algorithm, expired or not yet valid.
	ErrInvalidCredential = errors.Wrap(errors.ErrForbidden, "invalid credential")
)
