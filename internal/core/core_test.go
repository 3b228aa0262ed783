package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/Cracket007/etherscan/internal/core"
	"github.com/Cracket007/etherscan/internal/core/fake"
	"github.com/Cracket007/etherscan/internal/etherscan"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Wallet", func() {
	var (
		fakeLedger   *fake.LedgerClient
		fakeOracle   *fake.PriceOracle
		fakeExporter *fake.ReportExporter
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		wallet *core.Wallet

		address string
		fakeErr error
	)

	BeforeEach(func() {
		fakeLedger = new(fake.LedgerClient)
		fakeOracle = new(fake.PriceOracle)
		fakeExporter = new(fake.ReportExporter)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		wallet = core.NewWallet(fakeLogger, fakeLedger, fakeOracle, fakeExporter)

		address = "0xabc0000000000000000000000000000000000001"
		fakeErr = errors.New("fake error")
	})

	Describe("CurrentBalances", func() {
		var (
			balances core.Balances
			err      error
		)

		JustBeforeEach(func() {
			balances, err = wallet.CurrentBalances(ctx, address)
		})

		When("both balance fetches succeed", func() {
			BeforeEach(func() {
				fakeLedger.EthBalanceReturns("2000000000000000000", nil) // 2 ETH
				fakeLedger.TokenBalanceReturns("7500000", nil)          // 7.5 USDT
			})

			It("converts raw units to display units", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balances.ETH).To(BeNumerically("~", 2.0, 1e-12))
				Expect(balances.USDT).To(BeNumerically("~", 7.5, 1e-12))

				Expect(fakeLedger.EthBalanceCallCount()).To(Equal(1))
				_, argAddr := fakeLedger.EthBalanceArgsForCall(0)
				Expect(argAddr).To(Equal(address))

				Expect(fakeLedger.TokenBalanceCallCount()).To(Equal(1))
				_, argContract, argAddr := fakeLedger.TokenBalanceArgsForCall(0)
				Expect(argContract).To(Equal(core.USDTContract))
				Expect(argAddr).To(Equal(address))
			})
		})

		When("the eth balance fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.EthBalanceReturns("", fakeErr)
			})

			It("returns the error and no balances", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(balances).To(Equal(core.Balances{}))
			})
		})

		When("the token balance fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.EthBalanceReturns("1", nil)
				fakeLedger.TokenBalanceReturns("", fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the ledger returns a malformed balance", func() {
			BeforeEach(func() {
				fakeLedger.EthBalanceReturns("not-a-number", nil)
			})

			It("returns a parse error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("BalancesAt", func() {
		var (
			at       time.Time
			balances core.Balances
			err      error
		)

		BeforeEach(func() {
			at = time.Unix(1700000000, 0)

			fakeLedger.EthBalanceReturns("10000000000000000000", nil) // 10 ETH
			fakeLedger.TokenBalanceReturns("100000000", nil)          // 100 USDT
			fakeLedger.NormalTransactionsReturns([]etherscan.TxRecord{
				{
					// outgoing after the instant: undone as +1 ETH +fee
					Hash:      "0x1",
					TimeStamp: "1700000500",
					From:      address,
					To:        "0xdef0000000000000000000000000000000000002",
					Value:     "1000000000000000000",
					GasPrice:  "100000000000000000", // 0.1 ETH per gas unit of 1
					GasUsed:   "1",
				},
				{
					// before the instant: untouched
					Hash:      "0x2",
					TimeStamp: "1600000000",
					From:      "0xdef0000000000000000000000000000000000002",
					To:        address,
					Value:     "5000000000000000000",
				},
			}, nil)
			fakeLedger.TokenTransfersReturns([]etherscan.TxRecord{
				{
					// incoming after the instant: undone as -25 USDT
					Hash:      "0x3",
					TimeStamp: "1700000600",
					From:      "0xdef0000000000000000000000000000000000002",
					To:        address,
					Value:     "25000000",
				},
			}, nil)
		})

		JustBeforeEach(func() {
			balances, err = wallet.BalancesAt(ctx, address, at)
		})

		When("fetches succeed", func() {
			It("reverses the transactions newer than the instant", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balances.ETH).To(BeNumerically("~", 11.1, 1e-9))
				Expect(balances.USDT).To(BeNumerically("~", 75, 1e-9))
			})
		})

		When("the eth history fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.NormalTransactionsReturns(nil, fakeErr)
			})

			It("fails without partial results", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(balances).To(Equal(core.Balances{}))
			})
		})

		When("the token history fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.TokenTransfersReturns(nil, fakeErr)
			})

			It("fails without partial results", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(balances).To(Equal(core.Balances{}))
			})
		})

		When("the current balance fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.EthBalanceReturns("", fakeErr)
			})

			It("skips the history fetches entirely", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeLedger.NormalTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("TransactionStats", func() {
		var (
			ethStats  core.Stats
			usdtStats core.Stats
			err       error
		)

		JustBeforeEach(func() {
			ethStats, usdtStats, err = wallet.TransactionStats(ctx, address)
		})

		When("both histories are available", func() {
			BeforeEach(func() {
				fakeLedger.NormalTransactionsReturns([]etherscan.TxRecord{
					{
						Hash:      "0x1",
						TimeStamp: "1700000000",
						From:      address,
						To:        "0xdef0000000000000000000000000000000000002",
						Value:     "2000000000000000000",
						GasPrice:  "100000000000000000",
						GasUsed:   "1",
					},
					{
						Hash:      "0x2",
						TimeStamp: "1700000100",
						From:      "0xdef0000000000000000000000000000000000002",
						To:        address,
						Value:     "3000000000000000000",
					},
				}, nil)
				fakeLedger.TokenTransfersReturns([]etherscan.TxRecord{
					{
						Hash:      "0x3",
						TimeStamp: "1700000200",
						From:      "0xdef0000000000000000000000000000000000002",
						To:        address,
						Value:     "50000000",
					},
				}, nil)
			})

			It("aggregates each asset over its full history", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(ethStats.CountOut).To(Equal(1))
				Expect(ethStats.CountIn).To(Equal(1))
				Expect(ethStats.TotalOut).To(BeNumerically("~", 2, 1e-9))
				Expect(ethStats.TotalIn).To(BeNumerically("~", 3, 1e-9))
				Expect(ethStats.TotalFee).To(BeNumerically("~", 0.1, 1e-9))

				Expect(usdtStats.CountIn).To(Equal(1))
				Expect(usdtStats.TotalIn).To(BeNumerically("~", 50, 1e-9))
			})
		})

		When("a history fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.NormalTransactionsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SpotPrices", func() {
		var (
			eth  float64
			usdt float64
			err  error
		)

		JustBeforeEach(func() {
			eth, usdt, err = wallet.SpotPrices(ctx)
		})

		When("the oracle answers", func() {
			BeforeEach(func() {
				fakeOracle.EthPriceReturns(2000, nil)
				fakeOracle.TetherPriceReturns(1.0, nil)
			})

			It("returns both prices", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(eth).To(Equal(2000.0))
				Expect(usdt).To(Equal(1.0))
			})
		})

		When("the oracle fails", func() {
			BeforeEach(func() {
				fakeOracle.EthPriceReturns(0, fakeErr)
			})

			It("wraps the failure as a price error", func() {
				Expect(err).To(MatchError(core.ErrPriceUnavailable))
			})
		})
	})

	Describe("EthReport", func() {
		var (
			window core.Window
			label  string
			report *core.Report
			err    error
		)

		BeforeEach(func() {
			window = core.Window{}
			label = "all time"

			fakeOracle.EthPriceReturns(2000, nil)
			fakeLedger.EthBalanceReturns("1000000000000000000", nil)
			fakeLedger.TokenBalanceReturns("1000000", nil)
			fakeLedger.NormalTransactionsReturns([]etherscan.TxRecord{
				{
					Hash:      "0x1",
					TimeStamp: "1700000000",
					From:      address,
					To:        "0xdef0000000000000000000000000000000000002",
					Value:     "2000000000000000000",
					GasPrice:  "100000000000000000",
					GasUsed:   "1",
				},
			}, nil)
			fakeExporter.WriteReturns("reports/out.csv", nil)
		})

		JustBeforeEach(func() {
			report, err = wallet.EthReport(ctx, address, window, label)
		})

		When("everything succeeds", func() {
			It("writes the report and returns its summary", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.FilePath).To(Equal("reports/out.csv"))
				Expect(report.Asset).To(Equal(core.AssetETH))
				// outgoing with a fee occupies two rows
				Expect(report.RowCount).To(Equal(2))
				Expect(report.Balances.ETH).To(BeNumerically("~", 1, 1e-9))

				Expect(fakeExporter.WriteCallCount()).To(Equal(1))
				argName, argHeader, argRows := fakeExporter.WriteArgsForCall(0)
				Expect(argName).To(Equal(address + "_ETH_all_time.csv"))
				Expect(argHeader).To(HaveLen(11))
				Expect(argRows).To(HaveLen(2))
			})
		})

		When("the price oracle fails", func() {
			BeforeEach(func() {
				fakeOracle.EthPriceReturns(0, fakeErr)
			})

			It("refuses to produce a report", func() {
				Expect(err).To(MatchError(core.ErrPriceUnavailable))
				Expect(report).To(BeNil())
				Expect(fakeExporter.WriteCallCount()).To(Equal(0))
			})
		})

		When("the window excludes every transaction", func() {
			BeforeEach(func() {
				window = core.Window{Start: 1800000000}
			})

			It("returns the no-transactions error", func() {
				Expect(err).To(MatchError(core.ErrNoTransactions))
				Expect(fakeExporter.WriteCallCount()).To(Equal(0))
			})
		})

		When("the history fetch fails", func() {
			BeforeEach(func() {
				fakeLedger.NormalTransactionsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the export fails", func() {
			BeforeEach(func() {
				fakeExporter.WriteReturns("", fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(report).To(BeNil())
			})
		})
	})

	Describe("TokenReport", func() {
		var (
			window core.Window
			label  string
			report *core.Report
			err    error
		)

		BeforeEach(func() {
			window = core.Window{}
			label = ""

			fakeOracle.EthPriceReturns(2000, nil)
			fakeLedger.EthBalanceReturns("1000000000000000000", nil)
			fakeLedger.TokenBalanceReturns("5000000", nil)
			fakeLedger.TokenTransfersReturns([]etherscan.TxRecord{
				{
					Hash:      "0x9",
					TimeStamp: "1700000000",
					From:      "0xdef0000000000000000000000000000000000002",
					To:        address,
					Value:     "10000000",
				},
			}, nil)
			fakeExporter.WriteReturns("reports/usdt.csv", nil)
		})

		JustBeforeEach(func() {
			report, err = wallet.TokenReport(ctx, address, window, label)
		})

		When("everything succeeds", func() {
			It("writes the report with a default filename label", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Asset).To(Equal(core.AssetUSDT))
				Expect(report.RowCount).To(Equal(1))

				argName, _, _ := fakeExporter.WriteArgsForCall(0)
				Expect(argName).To(Equal(address + "_USDT_all_time.csv"))

				_, argContract, _ := fakeLedger.TokenTransfersArgsForCall(0)
				Expect(argContract).To(Equal(core.USDTContract))
			})
		})

		When("the price oracle fails", func() {
			BeforeEach(func() {
				fakeOracle.EthPriceReturns(0, fakeErr)
			})

			It("still produces the report with zero fee valuation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report).NotTo(BeNil())
				Expect(fakeExporter.WriteCallCount()).To(Equal(1))
			})
		})

		When("there are no transfers at all", func() {
			BeforeEach(func() {
				fakeLedger.TokenTransfersReturns(nil, nil)
			})

			It("returns the no-transactions error", func() {
				Expect(err).To(MatchError(core.ErrNoTransactions))
			})
		})
	})
})
