package core

// Aggregate folds transactions inside the window into per-asset totals.
// The fold is a plain sum and count, so it is order-independent and an
// empty input yields zero stats.
func Aggregate(txs []Transaction, window Window) Stats {
	var stats Stats

	for _, tx := range txs {
		if !window.Contains(tx.Timestamp) {
			continue
		}

		switch tx.Direction {
		case Outgoing:
			stats.TotalOut += tx.Value
			stats.TotalFee += tx.Fee
			stats.CountOut++
		case Incoming:
			stats.TotalIn += tx.Value
			stats.CountIn++
		}
	}

	return stats
}
