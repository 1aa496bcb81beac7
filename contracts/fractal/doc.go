/*
Package fractal implements Fractal contract, a custodial vault ledger with
divisible ownership claims.

One account wraps a unique asset into a vault and splits claims on it into a
whole-unit fraction supply that independent accounts hold and trade. The
fraction ledger is a divisible NEP-11-like token: each vault id is a token,
per-vault balances are token balances, and the contract additionally keeps a
single global ledger (per-account totals and overall supply) mutated in
lock-step with every per-vault movement. When one account accumulates the
whole supply of a vault, it may retract: the fractions are burned and custody
of the wrapped asset moves from the contract to the redeemer. A redeemed
vault can later be fractionalized again by its custodian, reusing the same
vault id.

Every failed method panics before any storage mutation, so a faulted
transaction leaves no observable state change. Panic messages of ledger
failures carry stable numeric codes, see the fractalconst package.

# Contract notifications

Transfer notification. It is produced on every fraction movement, including
minting (null from) and burning on redemption (null to).

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: vaultID
	    type: Integer

TransferMemo notification. It is produced by TransferMemo method in addition
to Transfer and carries the opaque memo payload for external observers.

	TransferMemo:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: vaultID
	    type: Integer
	  - name: memo
	    type: ByteArray

Mint notification. It is produced when a new vault is created.

	Mint:
	  - name: owner
	    type: Hash160
	  - name: vaultID
	    type: Integer
	  - name: supply
	    type: Integer
	  - name: uri
	    type: String

Retract notification. It is produced when a vault is redeemed.

	Retract:
	  - name: vaultID
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: supply
	    type: Integer

Fractionalize notification. It is produced when a redeemed vault re-enters
the fractional state.

	Fractionalize:
	  - name: vaultID
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: supply
	    type: Integer
*/
package fractal

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'v' -> int
   last issued vault id
 - 't' -> int
   sum of outstanding fraction supplies over all vaults
 - s<id> -> int
   outstanding fraction supply of the vault, absent once redeemed
 - b<owner><id> -> int
   fraction balance of the owner in the vault, zero entries are deleted
 - o<owner> -> int
   sum of the owner's fraction balances over all vaults
 - c<id> -> interop.Hash160
   current holder of the wrapped asset: the contract account between mint
   and redemption, the redeemer account afterwards
 - u<id> -> string
   metadata reference of the vault
 - a<owner><id> -> int
   vault id index used to enumerate vaults the owner holds fractions of

# Ledger
For every vault with a recorded supply, the sum of b entries over owners
equals the s entry, the sum of s entries equals 't', and every o entry
equals the sum of the owner's b entries. A vault either has an s entry and
b entries (fractional state) or has neither and its c entry points to an
external account (redeemed state).
*/
