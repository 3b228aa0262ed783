package core

import (
	"strings"
	"time"
)

// ReconstructBalanceAt derives the balance the address held at the given
// instant by starting from the current balance and undoing every transaction
// with a strictly greater timestamp. Transactions exactly at the instant are
// part of history and stay applied. Input order is irrelevant.
//
// For ETH the sender and recipient checks are applied independently, so a
// self-transfer undoes both the debit and the credit, which cancel and leave
// only the fee. The reports classify self-transfers as outgoing, and the
// reconstruction has to agree with them on the net effect.
func ReconstructBalanceAt(current float64, txs []Transaction, address string, at time.Time) float64 {
	target := at.Unix()
	balance := current

	for _, tx := range txs {
		if tx.Timestamp <= target {
			continue
		}

		if tx.Asset == AssetETH {
			if strings.EqualFold(tx.From, address) {
				balance += tx.Value // undo the send
				balance += tx.Fee  // undo the fee debit
			}
			if strings.EqualFold(tx.To, address) {
				balance -= tx.Value // undo the receipt
			}
			continue
		}

		if tx.Direction == Outgoing {
			balance += tx.Value
		} else {
			balance -= tx.Value
		}
	}

	return balance
}
