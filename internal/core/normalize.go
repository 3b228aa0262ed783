package core

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/Cracket007/etherscan/internal/etherscan"
)

var errMalformedField error = errors.New("malformed numeric field")

// Normalize converts raw Etherscan transfer records into Transactions
// relative to the queried address. Malformed records, and records where the
// address is neither sender nor recipient, are dropped; the second return
// value is the number of dropped records. A record-level failure is never
// fatal to the batch.
func Normalize(records []etherscan.TxRecord, asset Asset, address string) ([]Transaction, int) {
	txs := make([]Transaction, 0, len(records))
	skipped := 0

	for _, rec := range records {
		tx, err := normalizeRecord(rec, asset, address)
		if err != nil {
			skipped++
			continue
		}
		txs = append(txs, tx)
	}

	return txs, skipped
}

func normalizeRecord(rec etherscan.TxRecord, asset Asset, address string) (Transaction, error) {
	if rec.Hash == "" || rec.From == "" || rec.To == "" {
		return Transaction{}, errMalformedField
	}

	direction, ok := DirectionFor(rec.From, rec.To, address)
	if !ok {
		return Transaction{}, errMalformedField
	}

	timestamp, err := parseTimestamp(rec.TimeStamp)
	if err != nil {
		return Transaction{}, err
	}

	value, err := parseAmount(rec.Value, asset.Decimals())
	if err != nil {
		return Transaction{}, err
	}

	// the fee is paid in ETH by the submitter, for token transfers too;
	// it belongs to the transaction only when the queried address sent it
	var fee float64
	if direction == Outgoing {
		fee, err = parseFee(rec.GasPrice, rec.GasUsed)
		if err != nil {
			return Transaction{}, err
		}
	}

	return Transaction{
		Hash:      rec.Hash,
		Timestamp: timestamp,
		From:      rec.From,
		To:        rec.To,
		Value:     value,
		Fee:       fee,
		Asset:     asset,
		Direction: direction,
	}, nil
}

// parseRawUnits reads a fixed-point integer presented either as a plain
// decimal string or as a hex string with an 0x prefix.
func parseRawUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errMalformedField
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	raw, ok := new(big.Int).SetString(s, base)
	if !ok || raw.Sign() < 0 {
		return nil, errMalformedField
	}
	return raw, nil
}

// parseAmount converts a raw fixed-point amount to display units.
func parseAmount(s string, decimals int) (float64, error) {
	raw, err := parseRawUnits(s)
	if err != nil {
		return 0, err
	}
	return toDisplayUnits(raw, decimals), nil
}

// parseFee computes gasPrice*gasUsed in ETH display units.
func parseFee(gasPrice, gasUsed string) (float64, error) {
	price, err := parseRawUnits(gasPrice)
	if err != nil {
		return 0, err
	}
	used, err := parseRawUnits(gasUsed)
	if err != nil {
		return 0, err
	}
	return toDisplayUnits(new(big.Int).Mul(price, used), AssetETH.Decimals()), nil
}

func parseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		ts, err := strconv.ParseInt(s[2:], 16, 64)
		if err != nil {
			return 0, errMalformedField
		}
		return ts, nil
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errMalformedField
	}
	return ts, nil
}

func toDisplayUnits(raw *big.Int, decimals int) float64 {
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	quotient := new(big.Float).Quo(new(big.Float).SetInt(raw), new(big.Float).SetInt(divisor))
	value, _ := quotient.Float64()
	return value
}
