package instruction

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/gagliardetto/solana-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) solana.PrivateKey {
	t.Helper()
	k, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return k
}

func sampleInstruction(signer solana.PublicKey) Instruction {
	return Instruction{
		ProgramID: solana.MustPublicKeyFromBase58(common.DefaultProgramID),
		Accounts: []AccountMeta{
			{PublicKey: solana.SystemProgramID},
			{PublicKey: signer, IsSigner: true, IsWritable: true},
		},
		Data: []byte{1, 2, 3},
	}
}

func TestTransaction_RoundTripAndVerify(t *testing.T) {
	payer := newKey(t)
	other := newKey(t)

	tx, err := NewTransaction([]Instruction{sampleInstruction(other.PublicKey())}, payer, other)
	require.NoError(t, err)
	require.Len(t, tx.Signatures, 2)

	raw, err := tx.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(tx, got); diff != "" {
		t.Fatalf("decoded transaction mismatch (-want +got):\n%s", diff)
	}

	signers, err := got.Verify()
	require.NoError(t, err)
	assert.True(t, signers.Has(payer.PublicKey()))
	assert.True(t, signers.Has(other.PublicKey()))
	assert.Equal(t, tx.Signatures[0].String(), got.ID())

	fp, err := got.Message.FeePayer()
	require.NoError(t, err)
	assert.Equal(t, payer.PublicKey(), fp)
}

func TestTransaction_NoncesDiffer(t *testing.T) {
	payer := newKey(t)
	ix := sampleInstruction(payer.PublicKey())

	a, err := NewTransaction([]Instruction{ix}, payer)
	require.NoError(t, err)
	b, err := NewTransaction([]Instruction{ix}, payer)
	require.NoError(t, err)

	assert.NotEqual(t, a.Message.Nonce, b.Message.Nonce)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestTransaction_VerifyFailures(t *testing.T) {
	payer := newKey(t)
	outsider := newKey(t)

	t.Run("tampered message", func(t *testing.T) {
		tx, err := NewTransaction([]Instruction{sampleInstruction(payer.PublicKey())}, payer)
		require.NoError(t, err)
		tx.Message.Instructions[0].Data = []byte{9}

		_, err = tx.Verify()
		assert.True(t, errors.Is(err, common.ErrSignatureVerification), "got %v", err)
	})

	t.Run("signature count", func(t *testing.T) {
		tx, err := NewTransaction([]Instruction{sampleInstruction(payer.PublicKey())}, payer)
		require.NoError(t, err)
		tx.Signatures = nil

		_, err = tx.Verify()
		assert.True(t, errors.Is(err, common.ErrSignatureVerification), "got %v", err)
	})

	t.Run("signer flag without signature", func(t *testing.T) {
		tx, err := NewTransaction([]Instruction{sampleInstruction(outsider.PublicKey())}, payer)
		require.NoError(t, err)

		_, err = tx.Verify()
		assert.True(t, errors.Is(err, common.ErrMissingSignature), "got %v", err)
	})

	t.Run("no signers", func(t *testing.T) {
		_, err := NewTransaction(nil)
		assert.True(t, errors.Is(err, common.ErrInvalidTransaction), "got %v", err)

		_, err = (&Transaction{}).Verify()
		assert.True(t, errors.Is(err, common.ErrInvalidTransaction), "got %v", err)
	})
}

func TestUnmarshal_Garbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.Is(err, common.ErrInvalidTransaction), "got %v", err)
}
