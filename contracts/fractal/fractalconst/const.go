package fractalconst

// Stable numeric failure codes of the ledger. Panic messages below carry
// them verbatim, so callers can match on codes instead of text.
const (
	// CodeSenderMismatch is returned when the transaction is not witnessed
	// by the fraction sender.
	CodeSenderMismatch = 101
	// CodeOwnerMismatch is returned when the transaction is not witnessed
	// by the account receiving custody or new fractions.
	CodeOwnerMismatch = 102
	// CodeInvalidReceiver is returned on an attempt to transfer fractions
	// to their current holder.
	CodeInvalidReceiver = 103
	// CodeInsufficientBalance is returned when the requested movement or
	// redemption exceeds the held fraction quantity.
	CodeInsufficientBalance = 200
	// CodeInvalidSupply is returned on an attempt to create a non-positive
	// fraction supply.
	CodeInvalidSupply = 300
	// CodeInvalidVaultID is returned when the referenced vault has no
	// custody or supply record.
	CodeInvalidVaultID = 301
)

// Panic messages of the fractal contract.
const (
	// ErrSenderMismatch is returned if transferred fractions are not
	// witnessed by their sender.
	ErrSenderMismatch = "[101] sender witness check failed"
	// ErrOwnerMismatch is returned if minted fractions or redeemed custody
	// are not witnessed by their receiver.
	ErrOwnerMismatch = "[102] owner witness check failed"
	// ErrInvalidReceiver is returned on fraction transfer to self.
	ErrInvalidReceiver = "[103] sender and receiver must differ"
	// ErrInsufficientBalance is returned if the sender holds less than the
	// transferred amount, or a redeemer holds less than the whole supply.
	ErrInsufficientBalance = "[200] insufficient fraction balance"
	// ErrInvalidSupply is returned on mint or fractionalize with
	// a non-positive supply.
	ErrInvalidSupply = "[300] fraction supply must be positive"
	// ErrInvalidVaultID is returned if the referenced vault was never
	// minted or, for retract, was already redeemed.
	ErrInvalidVaultID = "[301] vault does not exist"
	// ErrAlreadyFractionalized is returned on fractionalize of a vault
	// that still has outstanding fractions.
	ErrAlreadyFractionalized = "[301] vault is already fractionalized"
)

// Value constraints.
const (
	// MaxURILength is the maximum length of the vault metadata reference.
	MaxURILength = 255
	// MaxMemoLength is the maximum length of the transfer memo payload.
	MaxMemoLength = 1024
)
