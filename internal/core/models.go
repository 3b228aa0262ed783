package core

import "strings"

// Asset is one of the two asset kinds the bot reports on.
type Asset string

const (
	AssetETH  Asset = "ETH"
	AssetUSDT Asset = "USDT"
)

// Decimals is the fixed-point precision of the asset's raw on-chain units.
func (a Asset) Decimals() int {
	if a == AssetUSDT {
		return 6
	}
	return 18
}

type Direction string

const (
	Incoming Direction = "in"
	Outgoing Direction = "out"
)

// DirectionFor classifies a transfer relative to the queried address.
// Outgoing takes priority, so a self-transfer classifies as outgoing.
// The second return value is false when the address is neither side.
func DirectionFor(from, to, queried string) (Direction, bool) {
	if strings.EqualFold(from, queried) {
		return Outgoing, true
	}
	if strings.EqualFold(to, queried) {
		return Incoming, true
	}
	return "", false
}

// Transaction is a normalized transfer record. Value and Fee are in the
// asset's display units; Fee is always denominated in ETH and populated
// only when the queried address is the sender.
type Transaction struct {
	Hash      string
	Timestamp int64
	From      string
	To        string
	Value     float64
	Fee       float64
	Asset     Asset
	Direction Direction
}

// Balances holds one amount per asset, in display units.
type Balances struct {
	ETH  float64
	USDT float64
}

// Stats are per-asset aggregates over a transaction set. TotalFee is
// meaningful for the native asset only.
type Stats struct {
	TotalIn  float64
	TotalOut float64
	TotalFee float64
	CountIn  int
	CountOut int
}

// Window is an inclusive [Start, End] timestamp range in unix seconds.
// A zero bound leaves that side open.
type Window struct {
	Start int64
	End   int64
}

func (w Window) Contains(ts int64) bool {
	if w.Start != 0 && ts < w.Start {
		return false
	}
	if w.End != 0 && ts > w.End {
		return false
	}
	return true
}

// Filter returns the transactions whose timestamps fall inside the window.
func (w Window) Filter(txs []Transaction) []Transaction {
	if w.Start == 0 && w.End == 0 {
		return txs
	}
	filtered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if w.Contains(tx.Timestamp) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Report describes one generated CSV report.
type Report struct {
	FilePath string
	Asset    Asset
	Stats    Stats
	Balances Balances
	RowCount int
	Skipped  int
}
