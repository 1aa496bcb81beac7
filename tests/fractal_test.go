package tests

import (
	"strings"
	"testing"

	"github.com/nspcc-dev/fractal-contract/contracts/fractal/fractalconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestFractalGeneric(t *testing.T) {
	_, c := newFractalInvoker(t)

	c.Invoke(t, "FRCT", "symbol")
	c.Invoke(t, 0, "decimals")
	c.Invoke(t, 0, "totalSupply")
}

func TestFractalMint(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	aliceH := alice.ScriptHash()

	cAlice.InvokeFail(t, fractalconst.ErrInvalidSupply, "mint", aliceH, int64(0), "ref://x")
	cAlice.InvokeFail(t, fractalconst.ErrInvalidSupply, "mint", aliceH, int64(-5), "ref://x")

	// No delegated minting: the fractions receiver must witness the tx.
	cAlice.InvokeFail(t, fractalconst.ErrSenderMismatch, "mint", bob.ScriptHash(), int64(100), "ref://x")

	longURI := strings.Repeat("u", fractalconst.MaxURILength+1)
	cAlice.InvokeFail(t, "uri is too long", "mint", aliceH, int64(100), longURI)

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")
	c.Invoke(t, 100, "balanceOf", aliceH, int64(1))
	c.Invoke(t, 100, "totalSupplyOf", int64(1))
	c.Invoke(t, 100, "overallBalanceOf", aliceH)
	c.Invoke(t, 100, "totalSupply")
	c.Invoke(t, "ref://x", "tokenURI", int64(1))
	c.Invoke(t, stackitem.Make(c.Hash.BytesBE()), "ownerOf", int64(1))

	cAlice.Invoke(t, 2, "mint", aliceH, int64(10), "ref://y")
	c.Invoke(t, 10, "balanceOf", aliceH, int64(2))
	c.Invoke(t, 110, "overallBalanceOf", aliceH)
	c.Invoke(t, 110, "totalSupply")

	c.Invoke(t, stackitem.NewMapWithValue([]stackitem.MapElement{
		{Key: stackitem.Make("name"), Value: stackitem.Make("fractal vault 1")},
		{Key: stackitem.Make("uri"), Value: stackitem.Make("ref://x")}}),
		"properties", int64(1))

	c.InvokeFail(t, fractalconst.ErrInvalidVaultID, "ownerOf", int64(42))
	c.InvokeFail(t, fractalconst.ErrInvalidVaultID, "properties", int64(42))
	c.Invoke(t, 0, "totalSupplyOf", int64(42))
	c.Invoke(t, "", "tokenURI", int64(42))
	c.Invoke(t, 0, "balanceOf", bob.ScriptHash(), int64(1))
	c.Invoke(t, 0, "overallBalanceOf", bob.ScriptHash())
}

func TestFractalTransfer(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	cBob := c.WithSigners(bob)
	aliceH := alice.ScriptHash()
	bobH := bob.ScriptHash()

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")

	cAlice.Invoke(t, true, "transfer", aliceH, bobH, int64(40), int64(1), nil)
	c.Invoke(t, 60, "balanceOf", aliceH, int64(1))
	c.Invoke(t, 40, "balanceOf", bobH, int64(1))
	c.Invoke(t, 60, "overallBalanceOf", aliceH)
	c.Invoke(t, 40, "overallBalanceOf", bobH)
	c.Invoke(t, 100, "totalSupplyOf", int64(1))
	c.Invoke(t, 100, "totalSupply")

	cAlice.InvokeFail(t, fractalconst.ErrInvalidReceiver, "transfer", aliceH, aliceH, int64(10), int64(1), nil)

	// No delegated transfer authority.
	cBob.InvokeFail(t, fractalconst.ErrSenderMismatch, "transfer", aliceH, bobH, int64(1), int64(1), nil)

	cBob.InvokeFail(t, "invalid amount", "transfer", bobH, aliceH, int64(-1), int64(1), nil)

	cBob.InvokeFail(t, fractalconst.ErrInsufficientBalance, "transfer", bobH, aliceH, int64(41), int64(1), nil)
	cBob.InvokeFail(t, fractalconst.ErrInsufficientBalance, "transfer", bobH, aliceH, int64(5), int64(42), nil)

	// Failed transfers leave no observable change.
	c.Invoke(t, 60, "balanceOf", aliceH, int64(1))
	c.Invoke(t, 40, "balanceOf", bobH, int64(1))
	c.Invoke(t, 60, "overallBalanceOf", aliceH)
	c.Invoke(t, 40, "overallBalanceOf", bobH)
}

func TestFractalTransferMemo(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	aliceH := alice.ScriptHash()
	bobH := bob.ScriptHash()

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")

	memo := []byte("settlement #1")
	cAlice.Invoke(t, true, "transferMemo", aliceH, bobH, int64(25), int64(1), memo)

	// The memo is carried to observers only, the ledger effect is the same
	// as of a plain transfer.
	c.Invoke(t, 75, "balanceOf", aliceH, int64(1))
	c.Invoke(t, 25, "balanceOf", bobH, int64(1))

	longMemo := make([]byte, fractalconst.MaxMemoLength+1)
	cAlice.InvokeFail(t, "memo is too long", "transferMemo", aliceH, bobH, int64(1), int64(1), longMemo)
}

func TestFractalRetract(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	cBob := c.WithSigners(bob)
	aliceH := alice.ScriptHash()
	bobH := bob.ScriptHash()

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")
	cAlice.Invoke(t, 2, "mint", aliceH, int64(10), "ref://y")
	cAlice.Invoke(t, true, "transfer", aliceH, bobH, int64(40), int64(1), nil)

	// Partial ownership is not redeemable, 40 != 100.
	cBob.InvokeFail(t, fractalconst.ErrInsufficientBalance, "retract", int64(1), bobH)

	cBob.InvokeFail(t, fractalconst.ErrOwnerMismatch, "retract", int64(1), aliceH)
	cAlice.InvokeFail(t, fractalconst.ErrInvalidVaultID, "retract", int64(42), aliceH)

	c.Invoke(t, 60, "balanceOf", aliceH, int64(1))
	c.Invoke(t, 40, "balanceOf", bobH, int64(1))
	c.Invoke(t, 100, "totalSupplyOf", int64(1))

	cBob.Invoke(t, true, "transfer", bobH, aliceH, int64(40), int64(1), nil)
	c.Invoke(t, 100, "balanceOf", aliceH, int64(1))

	cAlice.Invoke(t, stackitem.Null{}, "retract", int64(1), aliceH)
	c.Invoke(t, stackitem.Make(aliceH.BytesBE()), "ownerOf", int64(1))
	c.Invoke(t, 0, "totalSupplyOf", int64(1))
	c.Invoke(t, 0, "balanceOf", aliceH, int64(1))

	// Vault 2 is untouched, the global ledger follows.
	c.Invoke(t, 10, "overallBalanceOf", aliceH)
	c.Invoke(t, 10, "totalSupply")

	// The supply record is gone, zero-equals-zero must not pass.
	cAlice.InvokeFail(t, fractalconst.ErrInvalidVaultID, "retract", int64(1), aliceH)
}

func TestFractalFractionalize(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	cBob := c.WithSigners(bob)
	aliceH := alice.ScriptHash()
	bobH := bob.ScriptHash()

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")

	// While fractions are outstanding after mint, custody is held by the
	// contract, not by the supply holder.
	cAlice.InvokeFail(t, fractalconst.ErrOwnerMismatch, "fractionalize", int64(1), aliceH, int64(50), "ref://y")
	cAlice.InvokeFail(t, fractalconst.ErrInvalidVaultID, "fractionalize", int64(42), aliceH, int64(50), "ref://y")

	cAlice.Invoke(t, stackitem.Null{}, "retract", int64(1), aliceH)

	cAlice.InvokeFail(t, fractalconst.ErrInvalidSupply, "fractionalize", int64(1), aliceH, int64(0), "ref://y")
	cBob.InvokeFail(t, fractalconst.ErrOwnerMismatch, "fractionalize", int64(1), bobH, int64(50), "ref://y")
	cBob.InvokeFail(t, fractalconst.ErrOwnerMismatch, "fractionalize", int64(1), aliceH, int64(50), "ref://y")

	cAlice.Invoke(t, stackitem.Null{}, "fractionalize", int64(1), aliceH, int64(50), "ref://y")
	c.Invoke(t, 50, "totalSupplyOf", int64(1))
	c.Invoke(t, 50, "balanceOf", aliceH, int64(1))
	c.Invoke(t, 50, "overallBalanceOf", aliceH)
	c.Invoke(t, 50, "totalSupply")
	c.Invoke(t, "ref://y", "tokenURI", int64(1))

	// Custody stays with the re-fractionalizing owner.
	c.Invoke(t, stackitem.Make(aliceH.BytesBE()), "ownerOf", int64(1))

	cAlice.InvokeFail(t, fractalconst.ErrAlreadyFractionalized, "fractionalize", int64(1), aliceH, int64(25), "ref://z")

	// The re-entered vault goes through the whole cycle again.
	cAlice.Invoke(t, true, "transfer", aliceH, bobH, int64(50), int64(1), nil)
	cBob.Invoke(t, stackitem.Null{}, "retract", int64(1), bobH)
	c.Invoke(t, stackitem.Make(bobH.BytesBE()), "ownerOf", int64(1))
	c.Invoke(t, 0, "totalSupply")
}

func TestFractalVaultIDMonotonic(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	aliceH := alice.ScriptHash()

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")
	cAlice.Invoke(t, 2, "mint", aliceH, int64(100), "ref://y")

	cAlice.Invoke(t, stackitem.Null{}, "retract", int64(1), aliceH)
	cAlice.Invoke(t, stackitem.Null{}, "fractionalize", int64(1), aliceH, int64(5), "ref://x")

	// Redemption and re-fractionalization never touch the id allocator.
	cAlice.Invoke(t, 3, "mint", aliceH, int64(100), "ref://z")
}

func TestFractalTokens(t *testing.T) {
	_, c := newFractalInvoker(t)

	alice := c.NewAccount(t)
	bob := c.NewAccount(t)
	cAlice := c.WithSigners(alice)
	aliceH := alice.ScriptHash()
	bobH := bob.ScriptHash()

	cAlice.Invoke(t, 1, "mint", aliceH, int64(100), "ref://x")
	cAlice.Invoke(t, 2, "mint", aliceH, int64(10), "ref://y")

	s, err := c.TestInvoke(t, "tokens")
	require.NoError(t, err)
	iter := s.Pop().Value().(*storage.Iterator)
	require.Equal(t, []stackitem.Item{
		stackitem.NewByteArray([]byte{1}),
		stackitem.NewByteArray([]byte{2}),
	}, iteratorToArray(iter))

	cAlice.Invoke(t, true, "transfer", aliceH, bobH, int64(100), int64(1), nil)

	s, err = c.TestInvoke(t, "tokensOf", aliceH)
	require.NoError(t, err)
	iter = s.Pop().Value().(*storage.Iterator)
	require.Equal(t, []stackitem.Item{
		stackitem.NewByteArray([]byte{2}),
	}, iteratorToArray(iter))

	s, err = c.TestInvoke(t, "tokensOf", bobH)
	require.NoError(t, err)
	iter = s.Pop().Value().(*storage.Iterator)
	require.Equal(t, []stackitem.Item{
		stackitem.NewByteArray([]byte{1}),
	}, iteratorToArray(iter))

	// Redeemed vaults have no outstanding fractions to enumerate.
	c.WithSigners(bob).Invoke(t, stackitem.Null{}, "retract", int64(1), bobH)

	s, err = c.TestInvoke(t, "tokens")
	require.NoError(t, err)
	iter = s.Pop().Value().(*storage.Iterator)
	require.Equal(t, []stackitem.Item{
		stackitem.NewByteArray([]byte{2}),
	}, iteratorToArray(iter))

	s, err = c.TestInvoke(t, "tokensOf", bobH)
	require.NoError(t, err)
	iter = s.Pop().Value().(*storage.Iterator)
	require.Equal(t, []stackitem.Item{}, iteratorToArray(iter))
}
