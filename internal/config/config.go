package config

import (
	"context"
	"fmt"

	"github.com/jellydator/validation"
	"github.com/sethvargo/go-envconfig"
)

// App holds every runtime setting of the bot. All values come from
// environment variables.
type App struct {
	BotToken        string `env:"TELEGRAM_BOT_TOKEN"`
	AdminChatID     int64  `env:"ADMIN_CHAT_ID"`
	EtherscanAPIKey string `env:"ETHERSCAN_API_KEY"`
	EtherscanURL    string `env:"ETHERSCAN_API_URL,default=https://api.etherscan.io/api"`
	CoingeckoURL    string `env:"COINGECKO_API_URL,default=https://api.coingecko.com/api/v3"`
	DBConnectionURL string `env:"DB_CONNECTION_URL"`
	ReportsDir      string `env:"REPORTS_DIR,default=reports"`
	Debug           bool   `env:"APP_DEBUG"`
}

func NewApp(ctx context.Context) (App, error) {
	var app App
	if err := envconfig.Process(ctx, &app); err != nil {
		return App{}, fmt.Errorf("process environment: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.BotToken, validation.Required),
		validation.Field(&a.EtherscanAPIKey, validation.Required),
		validation.Field(&a.EtherscanURL, validation.Required),
		validation.Field(&a.CoingeckoURL, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.ReportsDir, validation.Required),
	)
}
