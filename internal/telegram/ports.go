package telegram

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/Cracket007/etherscan/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	CurrentBalances(ctx context.Context, address string) (core.Balances, error)
	BalancesAt(ctx context.Context, address string, at time.Time) (core.Balances, error)
	TransactionStats(ctx context.Context, address string) (core.Stats, core.Stats, error)
	SpotPrices(ctx context.Context) (float64, float64, error)
	EthReport(ctx context.Context, address string, window core.Window, label string) (*core.Report, error)
	TokenReport(ctx context.Context, address string, window core.Window, label string) (*core.Report, error)
}

// MessageSender is the slice of the bot API the handlers drive a chat
// with: status messages sent, edited in place, documents delivered.
// *tele.Bot satisfies it.
//
//counterfeiter:generate -o fake -fake-name MessageSender . MessageSender
type MessageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Reply(to *tele.Message, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
}

//counterfeiter:generate -o fake -fake-name PrefsStore . PrefsStore
type PrefsStore interface {
	SaveWallet(ctx context.Context, chatID int64, wallet string) error
	Wallet(ctx context.Context, chatID int64) (string, error)
	SaveAsset(ctx context.Context, chatID int64, asset string) error
	Asset(ctx context.Context, chatID int64) (string, error)
	SaveState(ctx context.Context, chatID int64, state string) error
	State(ctx context.Context, chatID int64) (string, error)
}
