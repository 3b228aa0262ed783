package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"github.com/Cracket007/etherscan/internal/coingecko"
	"github.com/Cracket007/etherscan/internal/config"
	"github.com/Cracket007/etherscan/internal/core"
	"github.com/Cracket007/etherscan/internal/db"
	"github.com/Cracket007/etherscan/internal/etherscan"
	"github.com/Cracket007/etherscan/internal/export"
	"github.com/Cracket007/etherscan/internal/repository"
	"github.com/Cracket007/etherscan/internal/telegram"
	"github.com/Cracket007/etherscan/pkg/log"
)

func Start() error {
	ctx := context.Background()

	cfg, err := config.NewApp(ctx)
	if err != nil {
		log.NewZapLogger("etherscan-bot", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	logger := log.NewZapLogger("etherscan-bot", level)

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// preference storage
	prefs := repository.NewPrefsRepository(dbConn)
	if err = prefs.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// external collaborators
	ledger := etherscan.NewClient(cfg.EtherscanURL, cfg.EtherscanAPIKey, nil)
	oracle := coingecko.NewClient(cfg.CoingeckoURL, nil)
	exporter := export.NewCSVWriter(cfg.ReportsDir)

	// wallet service
	wallet := core.NewWallet(logger, ledger, oracle, exporter)

	// conversation controller
	bot, err := telegram.New(cfg.BotToken, cfg.AdminChatID, logger, wallet, prefs)
	if err != nil {
		logger.Errorw("failed to create telegram bot", "error", err)
		return err
	}

	return run(bot)
}

func run(bot *telegram.Bot) error {
	// expect a signal to gracefully shut the bot down
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go bot.Start()

	<-sig
	bot.Stop()

	return nil
}
