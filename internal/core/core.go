package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// USDTContract is the canonical mainnet address of the Tether token,
// as listed in Etherscan's verified contract registry.
const USDTContract = "0xdAC17F958D2ee523a2206206994597C13D831ec7"

var ErrPriceUnavailable error = errors.New("spot price unavailable")
var ErrNoTransactions error = errors.New("no transactions found")

// Wallet answers balance, statistics and report requests for an account
// address. It holds no state between requests; all history is fetched fresh
// from the ledger client per call.
type Wallet struct {
	logs     *zap.SugaredLogger
	ledger   LedgerClient
	oracle   PriceOracle
	exporter ReportExporter
}

func NewWallet(logger *zap.SugaredLogger, ledger LedgerClient, oracle PriceOracle, exporter ReportExporter) *Wallet {
	return &Wallet{
		logs:     logger,
		ledger:   ledger,
		oracle:   oracle,
		exporter: exporter,
	}
}

// CurrentBalances fetches the present ETH and USDT balances of the address.
func (w *Wallet) CurrentBalances(ctx context.Context, address string) (Balances, error) {
	ethRaw, err := w.ledger.EthBalance(ctx, address)
	if err != nil {
		return Balances{}, fmt.Errorf("fetch eth balance: %w", err)
	}
	eth, err := parseAmount(ethRaw, AssetETH.Decimals())
	if err != nil {
		return Balances{}, fmt.Errorf("parse eth balance %q: %w", ethRaw, err)
	}

	usdtRaw, err := w.ledger.TokenBalance(ctx, USDTContract, address)
	if err != nil {
		return Balances{}, fmt.Errorf("fetch usdt balance: %w", err)
	}
	usdt, err := parseAmount(usdtRaw, AssetUSDT.Decimals())
	if err != nil {
		return Balances{}, fmt.Errorf("parse usdt balance %q: %w", usdtRaw, err)
	}

	return Balances{ETH: eth, USDT: usdt}, nil
}

// BalancesAt reconstructs the balances the address held at the given past
// instant. Either the whole result is produced or none of it: if any balance
// or history fetch fails, the error is returned and no partial balances are.
func (w *Wallet) BalancesAt(ctx context.Context, address string, at time.Time) (Balances, error) {
	current, err := w.CurrentBalances(ctx, address)
	if err != nil {
		return Balances{}, err
	}

	ethTxs, _, err := w.ethHistory(ctx, address)
	if err != nil {
		return Balances{}, err
	}
	usdtTxs, _, err := w.tokenHistory(ctx, address)
	if err != nil {
		return Balances{}, err
	}

	balances := Balances{
		ETH:  ReconstructBalanceAt(current.ETH, ethTxs, address, at),
		USDT: ReconstructBalanceAt(current.USDT, usdtTxs, address, at),
	}

	w.logs.Infow("balances reconstructed",
		"address", address,
		"at", at.Unix(),
		"eth_txs", len(ethTxs),
		"usdt_txs", len(usdtTxs))

	return balances, nil
}

// TransactionStats aggregates the full history of the address per asset.
func (w *Wallet) TransactionStats(ctx context.Context, address string) (Stats, Stats, error) {
	ethTxs, _, err := w.ethHistory(ctx, address)
	if err != nil {
		return Stats{}, Stats{}, err
	}
	usdtTxs, _, err := w.tokenHistory(ctx, address)
	if err != nil {
		return Stats{}, Stats{}, err
	}

	return Aggregate(ethTxs, Window{}), Aggregate(usdtTxs, Window{}), nil
}

// SpotPrices returns the current ETH/USD and USDT/USD prices.
func (w *Wallet) SpotPrices(ctx context.Context) (float64, float64, error) {
	eth, err := w.oracle.EthPrice(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrPriceUnavailable, err)
	}
	usdt, err := w.oracle.TetherPrice(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrPriceUnavailable, err)
	}
	return eth, usdt, nil
}

// EthReport builds a CSV report of the address's ETH transfers inside the
// window. The ETH/USD price is mandatory: without it no report is produced.
func (w *Wallet) EthReport(ctx context.Context, address string, window Window, label string) (*Report, error) {
	jobID := uuid.NewString()

	price, err := w.oracle.EthPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPriceUnavailable, err)
	}

	txs, skipped, err := w.ethHistory(ctx, address)
	if err != nil {
		return nil, err
	}

	txs = window.Filter(txs)
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}

	header, rows := BuildEthRows(txs, price)

	path, err := w.exporter.Write(reportFilename(address, AssetETH, label), header, rows)
	if err != nil {
		return nil, fmt.Errorf("export report: %w", err)
	}

	balances, err := w.CurrentBalances(ctx, address)
	if err != nil {
		return nil, err
	}

	w.logs.Infow("eth report generated",
		"job_id", jobID,
		"address", address,
		"rows", len(rows),
		"skipped", skipped,
		"path", path)

	return &Report{
		FilePath: path,
		Asset:    AssetETH,
		Stats:    Aggregate(txs, Window{}),
		Balances: balances,
		RowCount: len(rows),
		Skipped:  skipped,
	}, nil
}

// TokenReport builds a CSV report of the address's USDT transfers inside the
// window. The spot price only decorates the fee column here, so an
// unavailable oracle degrades the valuation to zero instead of failing.
func (w *Wallet) TokenReport(ctx context.Context, address string, window Window, label string) (*Report, error) {
	jobID := uuid.NewString()

	price, err := w.oracle.EthPrice(ctx)
	if err != nil {
		w.logs.Errorw("eth price unavailable, fee valuation degraded", "job_id", jobID, "error", err)
		price = 0
	}

	txs, skipped, err := w.tokenHistory(ctx, address)
	if err != nil {
		return nil, err
	}

	txs = window.Filter(txs)
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}

	header, rows := BuildTokenRows(txs, price)

	path, err := w.exporter.Write(reportFilename(address, AssetUSDT, label), header, rows)
	if err != nil {
		return nil, fmt.Errorf("export report: %w", err)
	}

	balances, err := w.CurrentBalances(ctx, address)
	if err != nil {
		return nil, err
	}

	w.logs.Infow("usdt report generated",
		"job_id", jobID,
		"address", address,
		"rows", len(rows),
		"skipped", skipped,
		"path", path)

	return &Report{
		FilePath: path,
		Asset:    AssetUSDT,
		Stats:    Aggregate(txs, Window{}),
		Balances: balances,
		RowCount: len(rows),
		Skipped:  skipped,
	}, nil
}

func (w *Wallet) ethHistory(ctx context.Context, address string) ([]Transaction, int, error) {
	records, err := w.ledger.NormalTransactions(ctx, address)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch eth history: %w", err)
	}

	txs, skipped := Normalize(records, AssetETH, address)
	if skipped > 0 {
		w.logs.Infow("skipped malformed eth records", "address", address, "skipped", skipped)
	}
	return txs, skipped, nil
}

func (w *Wallet) tokenHistory(ctx context.Context, address string) ([]Transaction, int, error) {
	records, err := w.ledger.TokenTransfers(ctx, USDTContract, address)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch usdt history: %w", err)
	}

	txs, skipped := Normalize(records, AssetUSDT, address)
	if skipped > 0 {
		w.logs.Infow("skipped malformed usdt records", "address", address, "skipped", skipped)
	}
	return txs, skipped, nil
}

func reportFilename(address string, asset Asset, label string) string {
	label = strings.ReplaceAll(strings.TrimSpace(label), " ", "_")
	if label == "" {
		label = "all_time"
	}
	return fmt.Sprintf("%s_%s_%s.csv", address, asset, label)
}
