// Package authority checks delegated capabilities: a record names the
// identity allowed to act on it and a call is allowed only if that identity
// signed it.
package authority

import (
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/gagliardetto/solana-go"
)

// Require succeeds iff stored is among the verified signers.
func Require(stored solana.PublicKey, signers instruction.SignerSet) error {
	if signers.Has(stored) {
		return nil
	}
	return fmt.Errorf("%w: %s did not sign", common.ErrorUnauthorized, stored)
}

// RequireAny succeeds iff at least one of the candidates signed.
func RequireAny(signers instruction.SignerSet, candidates ...solana.PublicKey) error {
	for _, c := range candidates {
		if signers.Has(c) {
			return nil
		}
	}
	return fmt.Errorf("%w: none of %d authorities signed", common.ErrorUnauthorized, len(candidates))
}
