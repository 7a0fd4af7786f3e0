// Package address derives the deterministic locations of registry records.
//
// A record address is a program-derived address: the seeds (a purpose tag,
// an optional discriminator and a one-byte bump) are hashed together with the
// program id and the result is guaranteed to lie off the ed25519 curve, so no
// private key can ever sign for it. The canonical bump is the highest bump
// that yields such an address.
package address

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/gagliardetto/solana-go"
	gocache "github.com/patrickmn/go-cache"
)

// Tag names the purpose of a derived address.
type Tag string

const (
	TagManager Tag = "manager"
	TagToken   Tag = "token"
)

// DefaultCacheTTL is used when NewDeriver is given a non-positive TTL.
const DefaultCacheTTL = 10 * time.Minute

// Derived is an address together with the bump that produced it.
type Derived struct {
	Address solana.PublicKey
	Bump    uint8
}

// Deriver computes record addresses for one program id. Canonical lookups
// are cached since finding the bump may take many hash rounds.
type Deriver struct {
	programID solana.PublicKey
	cache     *gocache.Cache
}

func NewDeriver(programID solana.PublicKey, ttl time.Duration) *Deriver {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Deriver{
		programID: programID,
		cache:     gocache.New(ttl, 2*ttl),
	}
}

// ProgramID returns the program the addresses are derived for.
func (d *Deriver) ProgramID() solana.PublicKey {
	return d.programID
}

// seeds validates the (tag, discriminator) pair and returns the seed list
// without the bump. Manager addresses take no discriminator; token addresses
// take exactly the 32 mint bytes. Fixing the shapes keeps seed concatenations
// of different tags from ever coinciding.
func seeds(tag Tag, discriminator []byte) ([][]byte, error) {
	switch tag {
	case TagManager:
		if len(discriminator) != 0 {
			return nil, fmt.Errorf("%w: manager address takes no discriminator", common.ErrAddressMismatch)
		}
		return [][]byte{[]byte(TagManager)}, nil
	case TagToken:
		if len(discriminator) != solana.PublicKeyLength {
			return nil, fmt.Errorf("%w: token address needs a %d-byte mint", common.ErrAddressMismatch, solana.PublicKeyLength)
		}
		return [][]byte{[]byte(TagToken), discriminator}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", common.ErrAddressMismatch, tag)
	}
}

// Derive computes the address for an explicit bump. Bumps that land on the
// curve have no valid address and are reported as ErrAddressMismatch.
func (d *Deriver) Derive(tag Tag, discriminator []byte, bump uint8) (solana.PublicKey, error) {
	s, err := seeds(tag, discriminator)
	if err != nil {
		return solana.PublicKey{}, err
	}
	addr, err := solana.CreateProgramAddress(append(s, []byte{bump}), d.programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: bump %d: %v", common.ErrAddressMismatch, bump, err)
	}
	return addr, nil
}

// Find returns the canonical address and bump for (tag, discriminator).
func (d *Deriver) Find(tag Tag, discriminator []byte) (Derived, error) {
	key := string(tag) + ":" + hex.EncodeToString(discriminator)
	if v, ok := d.cache.Get(key); ok {
		if derived, ok := v.(Derived); ok {
			return derived, nil
		}
	}

	s, err := seeds(tag, discriminator)
	if err != nil {
		return Derived{}, err
	}
	addr, bump, err := solana.FindProgramAddress(s, d.programID)
	if err != nil {
		return Derived{}, fmt.Errorf("find program address: %w", err)
	}

	derived := Derived{Address: addr, Bump: bump}
	d.cache.SetDefault(key, derived)
	return derived, nil
}

// Manager returns the canonical manager record address.
func (d *Deriver) Manager() (Derived, error) {
	return d.Find(TagManager, nil)
}

// Token returns the canonical token record address for mint.
func (d *Deriver) Token(mint solana.PublicKey) (Derived, error) {
	return d.Find(TagToken, mint.Bytes())
}

// Verify recomputes the address from (tag, discriminator, bump) and checks
// it against the address the caller declared.
func (d *Deriver) Verify(tag Tag, discriminator []byte, bump uint8, declared solana.PublicKey) error {
	addr, err := d.Derive(tag, discriminator, bump)
	if err != nil {
		return err
	}
	if !addr.Equals(declared) {
		return fmt.Errorf("%w: %s record expected at %s, got %s", common.ErrAddressMismatch, tag, addr, declared)
	}
	return nil
}

// VerifyCanonical is Verify plus the requirement that bump is the canonical
// bump. Record creation uses it so a record can only live at one address.
func (d *Deriver) VerifyCanonical(tag Tag, discriminator []byte, bump uint8, declared solana.PublicKey) error {
	if err := d.Verify(tag, discriminator, bump, declared); err != nil {
		return err
	}
	canonical, err := d.Find(tag, discriminator)
	if err != nil {
		return err
	}
	if canonical.Bump != bump {
		return fmt.Errorf("%w: bump %d is not canonical (%d)", common.ErrAddressMismatch, bump, canonical.Bump)
	}
	return nil
}
