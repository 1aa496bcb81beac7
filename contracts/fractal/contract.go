package fractal

import (
	"github.com/nspcc-dev/fractal-contract/common"
	"github.com/nspcc-dev/fractal-contract/contracts/fractal/fractalconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbol   = "FRCT"
	decimals = 0
)

// Keys of singleton storage values.
const (
	// lastVaultIDKey contains the last issued vault id. Ids are issued
	// strictly increasing and are never reused, even after redemption.
	lastVaultIDKey = 'v'
	// totalSupplyKey contains the sum of outstanding fraction supplies
	// over all vaults.
	totalSupplyKey = 't'
)

// Prefixes of storage tables.
const (
	// supplyPrefix contains map from vault id to its outstanding fraction
	// supply. The entry is deleted on redemption.
	supplyPrefix byte = 's'
	// balancePrefix contains map from (owner + vault id) to the owner's
	// fraction balance in this vault. Zero entries are deleted.
	balancePrefix byte = 'b'
	// ownerTotalPrefix contains map from owner to the sum of the owner's
	// fraction balances over all vaults.
	ownerTotalPrefix byte = 'o'
	// custodyPrefix contains map from vault id to the current holder of
	// the wrapped asset: the contract itself while fractions are
	// outstanding after mint, an external account after redemption.
	custodyPrefix byte = 'c'
	// uriPrefix contains map from vault id to its metadata reference.
	uriPrefix byte = 'u'
	// accountVaultPrefix contains map from (owner + vault id) to vault id,
	// used to enumerate vaults the owner holds fractions of.
	accountVaultPrefix byte = 'a'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	ctx := storage.GetContext()
	storage.Put(ctx, lastVaultIDKey, 0)
	storage.Put(ctx, totalSupplyKey, 0)
	runtime.Log("fractal contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("fractal contract updated")
}

// Symbol returns the fraction token symbol.
func Symbol() string {
	return symbol
}

// Decimals returns the precision of fraction balances. Fractions are
// whole-unit only, so it is always zero for every vault.
func Decimals() int {
	return decimals
}

// TotalSupply returns the sum of outstanding fraction supplies over all
// vaults.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, totalSupplyKey)
}

// TotalSupplyOf returns the outstanding fraction supply of the specified
// vault. It is zero for unknown and redeemed vaults.
func TotalSupplyOf(vaultID int) int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, supplyKey(vaultID))
}

// BalanceOf returns the fraction balance of the specified owner in the
// specified vault.
func BalanceOf(owner interop.Hash160, vaultID int) int {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, balanceKey(vaultID, owner))
}

// OverallBalanceOf returns the sum of fraction balances of the specified
// owner over all vaults.
func OverallBalanceOf(owner interop.Hash160) int {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, ownerTotalKey(owner))
}

// OwnerOf returns the current holder of the asset wrapped into the specified
// vault. It is the contract account between mint and redemption and the
// redeemer account afterwards.
func OwnerOf(vaultID int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, custodyKey(vaultID))
	if data == nil {
		panic(fractalconst.ErrInvalidVaultID)
	}
	// The explicit conversion makes the compiler emit CONVERT(ByteString),
	// countering the Buffer conversion emitted for the type assertion.
	return interop.Hash160(data.([]byte))
}

// TokenURI returns the metadata reference of the specified vault. It is
// empty for unknown vaults.
func TokenURI(vaultID int) string {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, uriKey(vaultID))
	if data == nil {
		return ""
	}
	return data.(string)
}

// Properties returns a name and a metadata reference of the specified vault.
func Properties(vaultID int) map[string]any {
	ctx := storage.GetReadOnlyContext()
	if storage.Get(ctx, custodyKey(vaultID)) == nil {
		panic(fractalconst.ErrInvalidVaultID)
	}

	var uri string
	if data := storage.Get(ctx, uriKey(vaultID)); data != nil {
		uri = data.(string)
	}

	return map[string]any{
		// The explicit conversion makes the compiler emit CONVERT(ByteString)
		// after the CAT opcode, which leaves a Buffer on the stack.
		"name": string("fractal vault " + std.Itoa(vaultID, 10)),
		"uri":  uri,
	}
}

// Tokens returns an iterator over ids of all vaults with outstanding
// fractions. Items are vault ids as integer byte strings.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{supplyPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// TokensOf returns an iterator over ids of vaults the specified owner holds
// fractions of. Items are vault ids as integer byte strings.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{accountVaultPrefix}, owner...), storage.ValuesOnly)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Mint wraps an asset into a new vault and credits its whole fraction supply
// to the specified owner. The transaction must be witnessed by the owner:
// fractions can be minted to self only. Custody of the new vault is assigned
// to the contract account until redemption. Mint returns the id of the new
// vault; ids are strictly increasing and are never reused.
//
// It produces Transfer and Mint notifications.
func Mint(to interop.Hash160, supply int, uri string) int {
	if len(to) != interop.Hash160Len {
		panic("invalid owner")
	}
	common.CheckWitnessWithMessage(to, fractalconst.ErrSenderMismatch)
	if supply <= 0 {
		panic(fractalconst.ErrInvalidSupply)
	}
	if len(uri) > fractalconst.MaxURILength {
		panic("uri is too long")
	}

	ctx := storage.GetContext()
	id := nextVaultID(ctx)

	addBalance(ctx, to, id, supply)
	storage.Put(ctx, supplyKey(id), supply)
	storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)+supply)
	storage.Put(ctx, custodyKey(id), runtime.GetExecutingScriptHash())
	storage.Put(ctx, uriKey(id), uri)

	runtime.Notify("Transfer", interop.Hash160(nil), to, supply, id)
	runtime.Notify("Mint", to, id, supply, uri)
	return id
}

// Transfer moves fractions of the specified vault between two accounts. The
// transaction must be witnessed by the sender: there is no delegated
// transfer authority. Transfer to self is rejected.
//
// It produces Transfer notification. The data parameter is not used by the
// contract and is kept for NEP-11 transfer signature compatibility.
func Transfer(from, to interop.Hash160, amount, vaultID int, data any) bool {
	ctx := storage.GetContext()
	transferFractions(ctx, from, to, amount, vaultID)
	return true
}

// TransferMemo is Transfer with an attached opaque memo payload. The memo
// does not affect ledger state and is only carried into the TransferMemo
// notification for external observers.
//
// It produces Transfer and TransferMemo notifications.
func TransferMemo(from, to interop.Hash160, amount, vaultID int, memo []byte) bool {
	if len(memo) > fractalconst.MaxMemoLength {
		panic("memo is too long")
	}

	ctx := storage.GetContext()
	transferFractions(ctx, from, to, amount, vaultID)

	runtime.Notify("TransferMemo", from, to, amount, vaultID, memo)
	return true
}

// Retract redeems a vault: it burns the vault's whole fraction supply held
// by the specified owner and assigns custody of the wrapped asset to them.
// The transaction must be witnessed by the owner, and the owner must hold
// exactly the whole outstanding supply. A vault that was never minted or was
// already redeemed is rejected before any balance comparison.
//
// It produces Transfer and Retract notifications.
func Retract(vaultID int, to interop.Hash160) {
	if len(to) != interop.Hash160Len {
		panic("invalid owner")
	}
	common.CheckWitnessWithMessage(to, fractalconst.ErrOwnerMismatch)

	ctx := storage.GetContext()
	data := storage.Get(ctx, supplyKey(vaultID))
	if data == nil {
		panic(fractalconst.ErrInvalidVaultID)
	}
	supply := data.(int)

	if getInt(ctx, balanceKey(vaultID, to)) != supply {
		panic(fractalconst.ErrInsufficientBalance)
	}

	subBalance(ctx, to, vaultID, supply)
	storage.Delete(ctx, supplyKey(vaultID))
	storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)-supply)
	storage.Put(ctx, custodyKey(vaultID), to)

	runtime.Notify("Transfer", to, interop.Hash160(nil), supply, vaultID)
	runtime.Notify("Retract", vaultID, to, supply)
}

// Fractionalize re-enters the fractional state for a redeemed vault. The
// transaction must be witnessed by the owner, who must hold custody of the
// vault; the whole new supply is credited to them and the metadata reference
// is overwritten. Custody is kept with the owner and the vault id is reused:
// the id allocator is not involved. A vault with outstanding fractions
// cannot be fractionalized again.
//
// It produces Transfer and Fractionalize notifications.
func Fractionalize(vaultID int, to interop.Hash160, supply int, uri string) {
	if len(to) != interop.Hash160Len {
		panic("invalid owner")
	}
	common.CheckWitnessWithMessage(to, fractalconst.ErrOwnerMismatch)
	if supply <= 0 {
		panic(fractalconst.ErrInvalidSupply)
	}
	if len(uri) > fractalconst.MaxURILength {
		panic("uri is too long")
	}

	ctx := storage.GetContext()
	data := storage.Get(ctx, custodyKey(vaultID))
	if data == nil {
		panic(fractalconst.ErrInvalidVaultID)
	}
	custodian := data.(interop.Hash160)
	if string(custodian) != string(to) {
		panic(fractalconst.ErrOwnerMismatch)
	}
	if storage.Get(ctx, supplyKey(vaultID)) != nil {
		panic(fractalconst.ErrAlreadyFractionalized)
	}

	addBalance(ctx, to, vaultID, supply)
	storage.Put(ctx, supplyKey(vaultID), supply)
	storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)+supply)
	storage.Put(ctx, uriKey(vaultID), uri)

	runtime.Notify("Transfer", interop.Hash160(nil), to, supply, vaultID)
	runtime.Notify("Fractionalize", vaultID, to, supply)
}

func transferFractions(ctx storage.Context, from, to interop.Hash160, amount, vaultID int) {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("invalid amount")
	}
	common.CheckWitnessWithMessage(from, fractalconst.ErrSenderMismatch)
	if string(from) == string(to) {
		panic(fractalconst.ErrInvalidReceiver)
	}

	subBalance(ctx, from, vaultID, amount)
	addBalance(ctx, to, vaultID, amount)

	runtime.Notify("Transfer", from, to, amount, vaultID)
}

// nextVaultID advances the process-wide vault id counter by exactly one and
// returns the new value. Mint is its only caller.
func nextVaultID(ctx storage.Context) int {
	id := getInt(ctx, lastVaultIDKey) + 1
	storage.Put(ctx, lastVaultIDKey, id)
	return id
}

func addBalance(ctx storage.Context, owner interop.Hash160, vaultID, amount int) {
	key := balanceKey(vaultID, owner)
	old := getInt(ctx, key)
	storage.Put(ctx, key, old+amount)

	totalKey := ownerTotalKey(owner)
	storage.Put(ctx, totalKey, getInt(ctx, totalKey)+amount)

	if old == 0 && amount > 0 {
		storage.Put(ctx, accountVaultKey(owner, vaultID), vaultID)
	}
}

func subBalance(ctx storage.Context, owner interop.Hash160, vaultID, amount int) {
	key := balanceKey(vaultID, owner)
	old := getInt(ctx, key)
	if old < amount {
		panic(fractalconst.ErrInsufficientBalance)
	}

	if old == amount {
		storage.Delete(ctx, key)
		storage.Delete(ctx, accountVaultKey(owner, vaultID))
	} else {
		storage.Put(ctx, key, old-amount)
	}

	totalKey := ownerTotalKey(owner)
	total := getInt(ctx, totalKey) - amount
	if total == 0 {
		storage.Delete(ctx, totalKey)
	} else {
		storage.Put(ctx, totalKey, total)
	}
}

func getInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}
	return 0
}

func supplyKey(vaultID int) []byte {
	return append([]byte{supplyPrefix}, convert.ToBytes(vaultID)...)
}

func balanceKey(vaultID int, owner interop.Hash160) []byte {
	return append(append([]byte{balancePrefix}, owner...), convert.ToBytes(vaultID)...)
}

func ownerTotalKey(owner interop.Hash160) []byte {
	return append([]byte{ownerTotalPrefix}, owner...)
}

func custodyKey(vaultID int) []byte {
	return append([]byte{custodyPrefix}, convert.ToBytes(vaultID)...)
}

func uriKey(vaultID int) []byte {
	return append([]byte{uriPrefix}, convert.ToBytes(vaultID)...)
}

func accountVaultKey(owner interop.Hash160, vaultID int) []byte {
	return append(append([]byte{accountVaultPrefix}, owner...), convert.ToBytes(vaultID)...)
}
