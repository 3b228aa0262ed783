package telegram

import (
	"fmt"

	"github.com/Cracket007/etherscan/internal/core"
)

const oopsMsg = "Oops! Something went wrong. Please try again later."

const (
	msgGreeting = "👋 Hi! Send an Ethereum wallet address to analyze"

	msgHelp = "📚 How to use this bot:\n\n" +
		"1. Send an Ethereum wallet address\n" +
		"2. Pick the asset (ETH or USDT)\n" +
		"3. Pick the analysis period\n" +
		"4. Receive a CSV report\n\n" +
		"Commands:\n" +
		"/start - Start over\n" +
		"/help - Show this help\n" +
		"/balance - Current wallet balance\n" +
		"/balance_at - Wallet balance at a date\n" +
		"/stats - Transaction statistics\n" +
		"/price - Current ETH and USDT price"

	msgNoWallet       = "❌ Send a wallet address to the chat first"
	msgBadAddress     = "❌ Please send a valid Ethereum wallet address"
	msgChooseAsset    = "💱 Choose the asset to analyze:"
	msgBalanceFailed  = "❌ Could not fetch the balance"
	msgStatsFailed    = "❌ Could not fetch the statistics"
	msgPriceFailed    = "❌ Could not fetch the price"
	msgNoTransactions = "❌ No transactions found"

	msgBalanceAtHint = "📅 To check the balance at a date, just send the date to the chat as:\n" +
		"DD.MM.YYYY\n\n" +
		"For example: 25.12.2023\n\n" +
		"💡 No need to call this command every time - send a date and I will " +
		"show the balance of the last submitted wallet at that date"

	msgCustomPeriodPrompt = "📅 Send the period as:\n" +
		"DD.MM.YYYY DD.MM.YYYY\n\n" +
		"For example: 01.01.2023 31.12.2023"
)

func balancesMessage(title, wallet string, b core.Balances) string {
	return fmt.Sprintf(
		"%s\n%s:\n\n🔷 ETH: %.4f\n💵 USDT: %.2f",
		title, wallet, b.ETH, b.USDT,
	)
}

func statsMessage(wallet string, eth, usdt core.Stats) string {
	return fmt.Sprintf(
		"📊 Wallet statistics\n%s\n\n"+
			"🔷 ETH:\n"+
			"Received: %.4f (%d transactions)\n"+
			"Sent: %.4f (%d transactions)\n"+
			"Fees: %.4f\n\n"+
			"💵 USDT:\n"+
			"Received: %.2f (%d transactions)\n"+
			"Sent: %.2f (%d transactions)",
		wallet,
		eth.TotalIn, eth.CountIn, eth.TotalOut, eth.CountOut, eth.TotalFee,
		usdt.TotalIn, usdt.CountIn, usdt.TotalOut, usdt.CountOut,
	)
}

func reportCaption(report *core.Report, periodLabel string) string {
	stats := report.Stats
	if report.Asset == core.AssetETH {
		return fmt.Sprintf(
			"📊 ETH transaction report\n📅 Period: %s\n\n"+
				"📥 Incoming: %d\n📤 Outgoing: %d\n"+
				"💵 Received: %.4f ETH\n💸 Sent: %.4f ETH\n🏷 Fees: %.4f ETH\n\n"+
				"💰 Current balance:\n🔷 ETH: %.4f\n💵 USDT: %.2f",
			periodLabel,
			stats.CountIn, stats.CountOut,
			stats.TotalIn, stats.TotalOut, stats.TotalFee,
			report.Balances.ETH, report.Balances.USDT,
		)
	}
	return fmt.Sprintf(
		"📊 USDT transaction report\n📅 Period: %s\n\n"+
			"📥 Incoming: %d\n📤 Outgoing: %d\n"+
			"💵 Received: %.2f USDT\n💸 Sent: %.2f USDT\n\n"+
			"💰 Current balance:\n🔷 ETH: %.4f\n💵 USDT: %.2f",
		periodLabel,
		stats.CountIn, stats.CountOut,
		stats.TotalIn, stats.TotalOut,
		report.Balances.ETH, report.Balances.USDT,
	)
}
