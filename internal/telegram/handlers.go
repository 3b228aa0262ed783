package telegram

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/Cracket007/etherscan/internal/core"
	"github.com/Cracket007/etherscan/internal/telegram/payload"
)

func (b *Bot) handleStart(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	if err := b.prefs.SaveState(ctx, chatID, ""); err != nil {
		b.logs.Errorw("failed to reset state", "chat_id", chatID, "error", err)
	}

	return c.Reply(msgGreeting)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Reply(msgHelp)
}

func (b *Bot) handleBalance(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	wallet, err := b.prefs.Wallet(ctx, chatID)
	if err != nil {
		b.logs.Errorw("failed to read wallet", "chat_id", chatID, "error", err)
		return c.Reply(msgBalanceFailed)
	}
	if wallet == "" {
		return c.Reply(msgNoWallet)
	}

	status, err := b.api.Reply(c.Message(), fmt.Sprintf("⏳ Fetching the balance of\n%s...", wallet))
	if err != nil {
		return fmt.Errorf("send status message: %w", err)
	}

	balances, err := b.wallet.CurrentBalances(ctx, wallet)
	if err != nil {
		b.logs.Errorw("failed to fetch balances", "chat_id", chatID, "wallet", wallet, "error", err)
		_, err = b.api.Edit(status, msgBalanceFailed)
		return err
	}

	_, err = b.api.Edit(status, balancesMessage("💰 Current wallet balance", wallet, balances))
	return err
}

func (b *Bot) handleBalanceAt(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	wallet, err := b.prefs.Wallet(ctx, chatID)
	if err != nil {
		b.logs.Errorw("failed to read wallet", "chat_id", chatID, "error", err)
		return c.Reply(msgBalanceFailed)
	}
	if wallet == "" {
		return c.Reply(msgNoWallet)
	}

	return c.Reply(msgBalanceAtHint)
}

func (b *Bot) handleStats(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	wallet, err := b.prefs.Wallet(ctx, chatID)
	if err != nil {
		b.logs.Errorw("failed to read wallet", "chat_id", chatID, "error", err)
		return c.Reply(msgStatsFailed)
	}
	if wallet == "" {
		return c.Reply(msgNoWallet)
	}

	status, err := b.api.Reply(c.Message(), fmt.Sprintf("⏳ Fetching statistics for\n%s...", wallet))
	if err != nil {
		return fmt.Errorf("send status message: %w", err)
	}

	ethStats, usdtStats, err := b.wallet.TransactionStats(ctx, wallet)
	if err != nil {
		b.logs.Errorw("failed to fetch stats", "chat_id", chatID, "wallet", wallet, "error", err)
		_, err = b.api.Edit(status, msgStatsFailed)
		return err
	}

	_, err = b.api.Edit(status, statsMessage(wallet, ethStats, usdtStats))
	return err
}

func (b *Bot) handlePrice(c tele.Context) error {
	status, err := b.api.Reply(c.Message(), "💱 Fetching the current prices...")
	if err != nil {
		return fmt.Errorf("send status message: %w", err)
	}

	eth, usdt, err := b.wallet.SpotPrices(context.Background())
	if err != nil {
		b.logs.Errorw("failed to fetch prices", "error", err)
		_, err = b.api.Edit(status, msgPriceFailed)
		return err
	}

	_, err = b.api.Edit(status, fmt.Sprintf("💰 ETH: $%.2f\n💵 USDT: $%.4f", eth, usdt))
	return err
}

// handleText routes free text: a custom period when one is awaited, then a
// date (balance at that date), then a wallet address.
func (b *Bot) handleText(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	state, err := b.prefs.State(ctx, chatID)
	if err != nil {
		b.logs.Errorw("failed to read state", "chat_id", chatID, "error", err)
	}
	if state == stateWaitingPeriod {
		return b.processCustomPeriod(c, chatID, text)
	}

	if !payload.LooksLikeAddress(text) {
		at, err := payload.ParseDate(text, time.Now().UTC())
		if err == nil {
			return b.balanceAtDate(c, chatID, text, at)
		}
		if errors.Is(err, payload.ErrFutureDate) {
			return c.Reply("❌ " + err.Error())
		}
		return c.Reply(msgBadAddress)
	}

	input := payload.AddressInput{Address: text}
	if err := input.Validate(); err != nil {
		return c.Reply(msgBadAddress)
	}

	if err := b.prefs.SaveWallet(ctx, chatID, text); err != nil {
		b.logs.Errorw("failed to save wallet", "chat_id", chatID, "error", err)
		return c.Reply(oopsMsg)
	}

	return c.Send(msgChooseAsset, assetKeyboard())
}

func (b *Bot) balanceAtDate(c tele.Context, chatID int64, dateText string, at time.Time) error {
	ctx := context.Background()

	wallet, err := b.prefs.Wallet(ctx, chatID)
	if err != nil {
		b.logs.Errorw("failed to read wallet", "chat_id", chatID, "error", err)
		return c.Reply(msgBalanceFailed)
	}
	if wallet == "" {
		return c.Reply(msgNoWallet)
	}

	status, err := b.api.Reply(c.Message(), fmt.Sprintf("⏳ Fetching the balance of\n%s\nat %s...", wallet, dateText))
	if err != nil {
		return fmt.Errorf("send status message: %w", err)
	}

	balances, err := b.wallet.BalancesAt(ctx, wallet, at)
	if err != nil {
		b.logs.Errorw("failed to reconstruct balances",
			"chat_id", chatID,
			"wallet", wallet,
			"at", at.Unix(),
			"error", err)
		_, err = b.api.Edit(status, msgBalanceFailed)
		return err
	}

	title := fmt.Sprintf("💰 Wallet balance at %s", dateText)
	_, err = b.api.Edit(status, balancesMessage(title, wallet, balances))
	return err
}

func (b *Bot) assetChosen(asset string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := context.Background()
		chatID := c.Chat().ID

		if err := b.prefs.SaveAsset(ctx, chatID, asset); err != nil {
			b.logs.Errorw("failed to save asset", "chat_id", chatID, "error", err)
			return c.Respond(&tele.CallbackResponse{Text: oopsMsg})
		}

		prompt := fmt.Sprintf("🔷 Choose the analysis period for %s transactions:", strings.ToUpper(asset))
		if err := c.Edit(prompt, periodKeyboard(asset)); err != nil {
			return err
		}
		return c.Respond()
	}
}

func (b *Bot) periodChosen(period string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := context.Background()
		chatID := c.Chat().ID

		asset := c.Data()
		if asset == "" {
			asset = "eth"
		}

		wallet, err := b.prefs.Wallet(ctx, chatID)
		if err != nil || wallet == "" {
			if err != nil {
				b.logs.Errorw("failed to read wallet", "chat_id", chatID, "error", err)
			}
			if err := c.Edit(msgNoWallet); err != nil {
				return err
			}
			return c.Respond()
		}

		now := time.Now().UTC()
		var window core.Window
		label := "all time"
		if period == "month" {
			window = core.Window{Start: now.AddDate(0, 0, -30).Unix(), End: now.Unix()}
			label = "last month"
		}

		if err := c.Edit("⏳ Generating the report..."); err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}

		return b.runReport(c, chatID, wallet, asset, window, label)
	}
}

func (b *Bot) handleCustomPeriod(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	if err := b.prefs.SaveState(ctx, chatID, stateWaitingPeriod); err != nil {
		b.logs.Errorw("failed to save state", "chat_id", chatID, "error", err)
		return c.Respond(&tele.CallbackResponse{Text: oopsMsg})
	}

	if err := c.Edit(msgCustomPeriodPrompt, customPeriodKeyboard()); err != nil {
		return err
	}
	return c.Respond()
}

func (b *Bot) handleBackToAssets(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	if err := b.prefs.SaveState(ctx, chatID, ""); err != nil {
		b.logs.Errorw("failed to reset state", "chat_id", chatID, "error", err)
	}

	if err := c.Edit(msgChooseAsset, assetKeyboard()); err != nil {
		return err
	}
	return c.Respond()
}

func (b *Bot) handleBackToPeriods(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	if err := b.prefs.SaveState(ctx, chatID, ""); err != nil {
		b.logs.Errorw("failed to reset state", "chat_id", chatID, "error", err)
	}

	asset, err := b.prefs.Asset(ctx, chatID)
	if err != nil || asset == "" {
		asset = "eth"
	}

	prompt := fmt.Sprintf("🔷 Choose the analysis period for %s transactions:", strings.ToUpper(asset))
	if err := c.Edit(prompt, periodKeyboard(asset)); err != nil {
		return err
	}
	return c.Respond()
}

func (b *Bot) processCustomPeriod(c tele.Context, chatID int64, text string) error {
	ctx := context.Background()

	start, end, err := payload.ParsePeriod(text, time.Now().UTC())
	if err != nil {
		// stay in the waiting state so the user can retry
		return c.Reply("❌ " + err.Error())
	}

	wallet, err := b.prefs.Wallet(ctx, chatID)
	if err != nil {
		b.logs.Errorw("failed to read wallet", "chat_id", chatID, "error", err)
		return c.Reply(oopsMsg)
	}
	if wallet == "" {
		return c.Reply(msgNoWallet)
	}

	asset, err := b.prefs.Asset(ctx, chatID)
	if err != nil || asset == "" {
		asset = "eth"
	}

	label := fmt.Sprintf("%s - %s", start.Format(payload.DateLayout), end.Format(payload.DateLayout))
	status, err := b.api.Reply(c.Message(), fmt.Sprintf("⏳ Generating the report for %s...", label))
	if err != nil {
		return fmt.Errorf("send status message: %w", err)
	}

	window := core.Window{Start: start.Unix(), End: end.Unix()}
	reportErr := b.runReportOn(status, chatID, wallet, asset, window, label)

	// leave the waiting state regardless of the report's fate, or the chat
	// would keep swallowing every message as a period
	if err := b.prefs.SaveState(ctx, chatID, ""); err != nil {
		b.logs.Errorw("failed to reset state", "chat_id", chatID, "error", err)
	}
	return reportErr
}

// runReport builds and delivers a report, editing the callback message with
// progress and the final status.
func (b *Bot) runReport(c tele.Context, chatID int64, wallet, asset string, window core.Window, label string) error {
	return b.runReportOn(c.Message(), chatID, wallet, asset, window, label)
}

func (b *Bot) runReportOn(status *tele.Message, chatID int64, wallet, asset string, window core.Window, label string) error {
	ctx := context.Background()

	var report *core.Report
	var err error
	if asset == "usdt" {
		report, err = b.wallet.TokenReport(ctx, wallet, window, label)
	} else {
		report, err = b.wallet.EthReport(ctx, wallet, window, label)
	}

	if err != nil {
		if errors.Is(err, core.ErrNoTransactions) {
			_, err = b.api.Edit(status, msgNoTransactions)
			return err
		}

		b.logs.Errorw("report generation failed",
			"chat_id", chatID,
			"wallet", wallet,
			"asset", asset,
			"period", label,
			"error", err)
		b.notifyAdmin(fmt.Sprintf("❌ %s report failed\n📅 Period: %s\n⚠️ Error: %s", strings.ToUpper(asset), label, err))

		_, err = b.api.Edit(status, "❌ Could not generate the report")
		return err
	}

	if _, err = b.api.Edit(status, fmt.Sprintf("✅ The %s report is ready", strings.ToUpper(asset))); err != nil {
		b.logs.Errorw("failed to edit status message", "chat_id", chatID, "error", err)
	}

	doc := &tele.Document{
		File:     tele.FromDisk(report.FilePath),
		FileName: filepath.Base(report.FilePath),
		Caption:  reportCaption(report, label),
	}
	if _, err = b.api.Send(tele.ChatID(chatID), doc); err != nil {
		return fmt.Errorf("send report document: %w", err)
	}

	if err = os.Remove(report.FilePath); err != nil {
		b.logs.Errorw("failed to remove report file", "path", report.FilePath, "error", err)
	}

	b.notifyAdmin(fmt.Sprintf("✅ %s report delivered\n📅 Period: %s", strings.ToUpper(asset), label))
	return nil
}
