// Package fractal contains RPC wrappers for Fractal contract.
package fractal

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, operation string, maxItems int, params ...any) (*result.Invoke, error)
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
	TerminateSession(sessionID uuid.UUID) error
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
}

// NewReader creates an instance of ContractReader using provided contract
// hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the
// given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor}
}

// Symbol invokes `symbol` method of the contract.
func (c *ContractReader) Symbol() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "symbol"))
}

// Decimals invokes `decimals` method of the contract.
func (c *ContractReader) Decimals() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "decimals"))
}

// TotalSupply invokes `totalSupply` method of the contract. It returns the
// sum of outstanding fraction supplies over all vaults.
func (c *ContractReader) TotalSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalSupply"))
}

// TotalSupplyOf invokes `totalSupplyOf` method of the contract. It returns
// the outstanding fraction supply of the vault, zero for unknown and
// redeemed vaults.
func (c *ContractReader) TotalSupplyOf(vaultID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalSupplyOf", vaultID))
}

// BalanceOf invokes `balanceOf` method of the contract.
func (c *ContractReader) BalanceOf(owner util.Uint160, vaultID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", owner, vaultID))
}

// OverallBalanceOf invokes `overallBalanceOf` method of the contract. It
// returns the sum of the owner's fraction balances over all vaults.
func (c *ContractReader) OverallBalanceOf(owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "overallBalanceOf", owner))
}

// OwnerOf invokes `ownerOf` method of the contract. It returns the current
// holder of the asset wrapped into the vault.
func (c *ContractReader) OwnerOf(vaultID *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "ownerOf", vaultID))
}

// TokenURI invokes `tokenURI` method of the contract.
func (c *ContractReader) TokenURI(vaultID *big.Int) (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "tokenURI", vaultID))
}

// Properties invokes `properties` method of the contract.
func (c *ContractReader) Properties(vaultID *big.Int) (*stackitem.Map, error) {
	return unwrap.Map(c.invoker.Call(c.hash, "properties", vaultID))
}

// Tokens invokes `tokens` method of the contract and returns an iterator
// session over ids of all vaults with outstanding fractions. Use
// TraverseIterator to advance it and TerminateSession to stop early.
func (c *ContractReader) Tokens() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "tokens"))
}

// TokensExpanded is similar to Tokens, but can be useful for server with
// disabled sessions. It expands the iterator in place up to maxItems items.
func (c *ContractReader) TokensExpanded(maxItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "tokens", maxItems))
}

// TokensOf invokes `tokensOf` method of the contract and returns an iterator
// session over ids of vaults the owner holds fractions of.
func (c *ContractReader) TokensOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "tokensOf", owner))
}

// TokensOfExpanded is similar to TokensOf, but can be useful for server with
// disabled sessions. It expands the iterator in place up to maxItems items.
func (c *ContractReader) TokensOfExpanded(owner util.Uint160, maxItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "tokensOf", maxItems, owner))
}

// Version invokes `version` method of the contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Mint creates a transaction invoking `mint` method of the contract.
// The transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(to util.Uint160, supply *big.Int, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", to, supply, uri)
}

// MintTransaction creates a transaction invoking `mint` method of the
// contract. The transaction is signed, but not sent to the network, instead
// it's returned to the caller.
func (c *Contract) MintTransaction(to util.Uint160, supply *big.Int, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", to, supply, uri)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// The transaction is not signed and just returned to the caller.
func (c *Contract) MintUnsigned(to util.Uint160, supply *big.Int, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, to, supply, uri)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// The transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from, to util.Uint160, amount, vaultID *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, amount, vaultID, data)
}

// TransferTransaction creates a transaction invoking `transfer` method of
// the contract. The transaction is signed, but not sent to the network,
// instead it's returned to the caller.
func (c *Contract) TransferTransaction(from, to util.Uint160, amount, vaultID *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, amount, vaultID, data)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the
// contract. The transaction is not signed and just returned to the caller.
func (c *Contract) TransferUnsigned(from, to util.Uint160, amount, vaultID *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, amount, vaultID, data)
}

// TransferMemo creates a transaction invoking `transferMemo` method of the
// contract. The transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferMemo(from, to util.Uint160, amount, vaultID *big.Int, memo []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferMemo", from, to, amount, vaultID, memo)
}

// TransferMemoTransaction creates a transaction invoking `transferMemo`
// method of the contract. The transaction is signed, but not sent to the
// network, instead it's returned to the caller.
func (c *Contract) TransferMemoTransaction(from, to util.Uint160, amount, vaultID *big.Int, memo []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferMemo", from, to, amount, vaultID, memo)
}

// TransferMemoUnsigned creates a transaction invoking `transferMemo` method
// of the contract. The transaction is not signed and just returned to the
// caller.
func (c *Contract) TransferMemoUnsigned(from, to util.Uint160, amount, vaultID *big.Int, memo []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferMemo", nil, from, to, amount, vaultID, memo)
}

// Retract creates a transaction invoking `retract` method of the contract.
// The transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Retract(vaultID *big.Int, to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "retract", vaultID, to)
}

// RetractTransaction creates a transaction invoking `retract` method of the
// contract. The transaction is signed, but not sent to the network, instead
// it's returned to the caller.
func (c *Contract) RetractTransaction(vaultID *big.Int, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "retract", vaultID, to)
}

// RetractUnsigned creates a transaction invoking `retract` method of the
// contract. The transaction is not signed and just returned to the caller.
func (c *Contract) RetractUnsigned(vaultID *big.Int, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "retract", nil, vaultID, to)
}

// Fractionalize creates a transaction invoking `fractionalize` method of the
// contract. The transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Fractionalize(vaultID *big.Int, to util.Uint160, supply *big.Int, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fractionalize", vaultID, to, supply, uri)
}

// FractionalizeTransaction creates a transaction invoking `fractionalize`
// method of the contract. The transaction is signed, but not sent to the
// network, instead it's returned to the caller.
func (c *Contract) FractionalizeTransaction(vaultID *big.Int, to util.Uint160, supply *big.Int, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fractionalize", vaultID, to, supply, uri)
}

// FractionalizeUnsigned creates a transaction invoking `fractionalize`
// method of the contract. The transaction is not signed and just returned
// to the caller.
func (c *Contract) FractionalizeUnsigned(vaultID *big.Int, to util.Uint160, supply *big.Int, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fractionalize", nil, vaultID, to, supply, uri)
}

// Update creates a transaction invoking `update` method of the contract.
// The transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}
