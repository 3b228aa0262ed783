package telegram

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// stateWaitingPeriod marks a chat that has been prompted for a custom
// report period and whose next text message is that period.
const stateWaitingPeriod = "waiting_period"

// Bot is the conversation controller. It owns no domain logic: every
// request is validated here and handed to the wallet service, and every
// outcome is rendered back into the chat.
type Bot struct {
	bot     *tele.Bot
	api     MessageSender
	logs    *zap.SugaredLogger
	wallet  WalletService
	prefs   PrefsStore
	adminID int64
}

func New(token string, adminID int64, logger *zap.SugaredLogger, wallet WalletService, prefs PrefsStore) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("create telebot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		api:     b,
		logs:    logger,
		wallet:  wallet,
		prefs:   prefs,
		adminID: adminID,
	}
	bot.register()

	return bot, nil
}

func (b *Bot) register() {
	if err := b.bot.SetCommands([]tele.Command{
		{Text: "start", Description: "Start over"},
		{Text: "help", Description: "Show help"},
		{Text: "balance", Description: "Current wallet balance"},
		{Text: "balance_at", Description: "Wallet balance at a date"},
		{Text: "stats", Description: "Transaction statistics"},
		{Text: "price", Description: "Current ETH and USDT price"},
	}); err != nil {
		b.logs.Errorw("failed to set bot commands", "error", err)
	}

	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle("/help", b.handleHelp)
	b.bot.Handle("/balance", b.handleBalance)
	b.bot.Handle("/balance_at", b.handleBalanceAt)
	b.bot.Handle("/stats", b.handleStats)
	b.bot.Handle("/price", b.handlePrice)
	b.bot.Handle(tele.OnText, b.handleText)

	b.bot.Handle(&tele.Btn{Unique: btnAssetETH}, b.assetChosen("eth"))
	b.bot.Handle(&tele.Btn{Unique: btnAssetUSDT}, b.assetChosen("usdt"))
	b.bot.Handle(&tele.Btn{Unique: btnPeriodMonth}, b.periodChosen("month"))
	b.bot.Handle(&tele.Btn{Unique: btnPeriodAll}, b.periodChosen("all"))
	b.bot.Handle(&tele.Btn{Unique: btnPeriodCustom}, b.handleCustomPeriod)
	b.bot.Handle(&tele.Btn{Unique: btnBackTokens}, b.handleBackToAssets)
	b.bot.Handle(&tele.Btn{Unique: btnBackPeriods}, b.handleBackToPeriods)
}

// Start blocks polling for updates until Stop is called.
func (b *Bot) Start() {
	b.logs.Infow("bot started", "username", b.bot.Me.Username)
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
	b.logs.Infow("bot stopped")
}

// notifyAdmin reports operational outcomes to the admin chat, if one is
// configured. Failures are logged and swallowed.
func (b *Bot) notifyAdmin(text string) {
	if b.adminID == 0 {
		return
	}
	if _, err := b.api.Send(tele.ChatID(b.adminID), text); err != nil {
		b.logs.Errorw("failed to notify admin", "error", err)
	}
}
