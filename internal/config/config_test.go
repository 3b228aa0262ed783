package config_test

import (
	"context"

	"github.com/Cracket007/etherscan/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("App", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()

		GinkgoT().Setenv("TELEGRAM_BOT_TOKEN", "123:token")
		GinkgoT().Setenv("ADMIN_CHAT_ID", "42")
		GinkgoT().Setenv("ETHERSCAN_API_KEY", "api-key")
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://localhost/bot")
		GinkgoT().Setenv("APP_DEBUG", "true")
	})

	Describe("NewApp", func() {
		When("the environment is complete", func() {
			It("loads the config with defaults applied", func() {
				app, err := config.NewApp(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(app.BotToken).To(Equal("123:token"))
				Expect(app.AdminChatID).To(Equal(int64(42)))
				Expect(app.EtherscanAPIKey).To(Equal("api-key"))
				Expect(app.EtherscanURL).To(Equal("https://api.etherscan.io/api"))
				Expect(app.CoingeckoURL).To(Equal("https://api.coingecko.com/api/v3"))
				Expect(app.ReportsDir).To(Equal("reports"))
				Expect(app.Debug).To(BeTrue())
			})
		})

		When("an endpoint is overridden", func() {
			BeforeEach(func() {
				GinkgoT().Setenv("ETHERSCAN_API_URL", "http://localhost:9000/api")
			})

			It("respects the override", func() {
				app, err := config.NewApp(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(app.EtherscanURL).To(Equal("http://localhost:9000/api"))
			})
		})

		When("the bot token is missing", func() {
			BeforeEach(func() {
				GinkgoT().Setenv("TELEGRAM_BOT_TOKEN", "")
			})

			It("fails validation", func() {
				_, err := config.NewApp(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("BotToken"))
			})
		})

		When("the database url is missing", func() {
			BeforeEach(func() {
				GinkgoT().Setenv("DB_CONNECTION_URL", "")
			})

			It("fails validation", func() {
				_, err := config.NewApp(ctx)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Validate", func() {
		It("accepts a fully populated config", func() {
			app := config.App{
				BotToken:        "t",
				EtherscanAPIKey: "k",
				EtherscanURL:    "u",
				CoingeckoURL:    "c",
				DBConnectionURL: "d",
				ReportsDir:      "r",
			}
			Expect(app.Validate()).To(Succeed())
		})

		It("rejects an empty config", func() {
			Expect(config.App{}.Validate()).NotTo(Succeed())
		})
	})
})
