package core

import (
	"context"

	"github.com/Cracket007/etherscan/internal/etherscan"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerClient . LedgerClient
type LedgerClient interface {
	EthBalance(ctx context.Context, address string) (string, error)
	TokenBalance(ctx context.Context, contract, address string) (string, error)
	NormalTransactions(ctx context.Context, address string) ([]etherscan.TxRecord, error)
	TokenTransfers(ctx context.Context, contract, address string) ([]etherscan.TxRecord, error)
}

//counterfeiter:generate -o fake -fake-name PriceOracle . PriceOracle
type PriceOracle interface {
	EthPrice(ctx context.Context) (float64, error)
	TetherPrice(ctx context.Context) (float64, error)
}

//counterfeiter:generate -o fake -fake-name ReportExporter . ReportExporter
type ReportExporter interface {
	Write(filename string, header []string, rows [][]string) (string, error)
}
