// Package common defines sentinel errors and shared constants used across the
// registry node, the ledger runtime and the client. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registry program errors.
	ErrAddressMismatch       = errors.New("address mismatch")
	ErrAlreadyInitialized    = errors.New("manager already initialized")
	ErrAlreadyRegistered     = errors.New("token already registered")
	ErrInvalidInstruction    = errors.New("invalid instruction")
	ErrNotEnoughAccounts     = errors.New("not enough account keys")
	ErrInvalidAccountData    = errors.New("invalid account data")
	ErrInvalidMint           = errors.New("invalid mint")
	ErrInvalidProgramAccount = errors.New("invalid program account")
	ErrMetadataTooLarge      = errors.New("metadata too large")

	// Runtime errors.
	ErrMissingSignature        = errors.New("missing required signature")
	ErrSignatureVerification   = errors.New("signature verification failed")
	ErrDuplicateTransaction    = errors.New("duplicate transaction")
	ErrUnknownProgram          = errors.New("unknown program")
	ErrInvalidTransaction      = errors.New("invalid transaction")
	ErrAccountAlreadyInUse     = errors.New("account already in use")
	ErrInvalidToken            = errors.New("invalid token")
	ErrTokenExpired            = errors.New("token expired")
	ErrSnapshotStoreNotDefined = errors.New("snapshot store not configured")
)

// programErrors lists errors with a stable numeric code, in the order they
// were introduced. Codes start at 6000.
var programErrors = []error{
	ErrAddressMismatch,
	ErrAlreadyInitialized,
	ErrAlreadyRegistered,
	ErrorNotFound,
	ErrorUnauthorized,
	ErrInvalidInstruction,
	ErrNotEnoughAccounts,
	ErrInvalidAccountData,
	ErrInvalidMint,
	ErrInvalidProgramAccount,
	ErrMetadataTooLarge,
	ErrMissingSignature,
	ErrSignatureVerification,
	ErrDuplicateTransaction,
	ErrUnknownProgram,
	ErrInvalidTransaction,
	ErrAccountAlreadyInUse,
}

// ProgramErrorBase is the first numeric program error code.
const ProgramErrorBase = 6000

// ErrorCode returns the stable code of a known program error and false for
// anything else.
func ErrorCode(err error) (uint32, bool) {
	if err == nil {
		return 0, false
	}
	for i, e := range programErrors {
		if errors.Is(err, e) {
			return uint32(ProgramErrorBase + i), true
		}
	}
	return 0, false
}

// ErrorFromMessage resolves a sentinel by its text. It is used by the client
// to turn a gRPC status message back into a matchable error.
func ErrorFromMessage(msg string) (error, bool) {
	for _, e := range programErrors {
		if e.Error() == msg {
			return e, true
		}
	}
	return nil, false
}
