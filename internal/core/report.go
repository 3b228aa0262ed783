package core

import (
	"strconv"
	"time"
)

var ethReportHeader = []string{
	"Date", "From", "To", "Transaction Hash",
	"Amount In (ETH)", "Amount Out (ETH)", "Fee (ETH)", "Fee (USD)",
	"CurrentValue", "General amount", "General amount USD",
}

var tokenReportHeader = []string{
	"Date", "From", "To", "Transaction Hash",
	"Amount Out (USDT)", "Amount Received (USDT)", "Fee (ETH)", "Fee (USD)",
}

// BuildEthRows derives the CSV rows of an ETH report. An outgoing
// transaction with a positive fee produces a second, synthetic row carrying
// the fee as its only outgoing amount, so such transactions occupy two rows.
func BuildEthRows(txs []Transaction, ethUSD float64) ([]string, [][]string) {
	rows := make([][]string, 0, len(txs))

	for _, tx := range txs {
		date := time.Unix(tx.Timestamp, 0).UTC().Format("02/01/2006")
		outgoing := tx.Direction == Outgoing

		var amountIn, amountOut float64
		if outgoing {
			amountOut = tx.Value
		} else {
			amountIn = tx.Value
		}

		general := tx.Value
		if outgoing {
			general = amountOut - tx.Fee
		}

		rows = append(rows, []string{
			date, tx.From, tx.To, tx.Hash,
			formatAmount(amountIn),
			formatAmount(amountOut),
			formatAmount(tx.Fee),
			formatAmount(tx.Fee * ethUSD),
			formatAmount(tx.Value * ethUSD),
			formatAmount(general),
			formatAmount(general * ethUSD),
		})

		if outgoing && tx.Fee > 0 {
			rows = append(rows, []string{
				date, tx.From, tx.To, tx.Hash,
				formatAmount(0),
				formatAmount(tx.Fee),
				formatAmount(0),
				formatAmount(0),
				formatAmount(0),
				formatAmount(0),
				formatAmount(0),
			})
		}
	}

	return ethReportHeader, rows
}

// BuildTokenRows derives the CSV rows of a USDT report, one row per
// transfer event. The fee columns stay in ETH terms because the submitter
// pays gas in the native asset.
func BuildTokenRows(txs []Transaction, ethUSD float64) ([]string, [][]string) {
	rows := make([][]string, 0, len(txs))

	for _, tx := range txs {
		date := time.Unix(tx.Timestamp, 0).UTC().Format("02.01.2006 15:04:05")

		var amountIn, amountOut float64
		if tx.Direction == Outgoing {
			amountOut = tx.Value
		} else {
			amountIn = tx.Value
		}

		rows = append(rows, []string{
			date, tx.From, tx.To, tx.Hash,
			formatAmount(amountOut),
			formatAmount(amountIn),
			formatAmount(tx.Fee),
			formatAmount(tx.Fee * ethUSD),
		})
	}

	return tokenReportHeader, rows
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
