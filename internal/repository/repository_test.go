package repository_test

import (
	"context"
	"errors"

	"github.com/Cracket007/etherscan/internal/db"
	"github.com/Cracket007/etherscan/internal/repository"
	"github.com/Cracket007/etherscan/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrefsRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.PrefsRepository
		ctx         context.Context

		chatID  int64
		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewPrefsRepository(fakeStorage)
		ctx = context.Background()

		chatID = 42
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("migrates the prefs table", func() {
			Expect(repo.Migrate()).To(Succeed())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			args := fakeStorage.MigrateTableArgsForCall(0)
			Expect(args).To(HaveLen(1))
			Expect(args[0]).To(BeAssignableToTypeOf(&repository.UserPrefs{}))
		})

		It("wraps a migration failure", func() {
			fakeStorage.MigrateTableReturns(fakeErr)
			Expect(repo.Migrate()).To(MatchError(fakeErr))
		})
	})

	Describe("SaveWallet", func() {
		When("no row exists yet", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("creates a fresh row with the normalized address", func() {
				err := repo.SaveWallet(ctx, chatID, "  0xAbCdEf0000000000000000000000000000000001  ")
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveCallCount()).To(Equal(1))
				_, record := fakeStorage.SaveArgsForCall(0)
				prefs, ok := record.(*repository.UserPrefs)
				Expect(ok).To(BeTrue())
				Expect(prefs.ChatID).To(Equal(chatID))
				Expect(prefs.Wallet).To(Equal("0xabcdef0000000000000000000000000000000001"))
			})
		})

		When("a row already exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					prefs := entity.(*repository.UserPrefs)
					*prefs = repository.UserPrefs{ChatID: chatID, Asset: "eth", State: "s"}
					return nil
				}
			})

			It("keeps the other fields intact", func() {
				err := repo.SaveWallet(ctx, chatID, "0xNEW")
				Expect(err).NotTo(HaveOccurred())

				_, record := fakeStorage.SaveArgsForCall(0)
				prefs := record.(*repository.UserPrefs)
				Expect(prefs.Asset).To(Equal("eth"))
				Expect(prefs.State).To(Equal("s"))
				Expect(prefs.Wallet).To(Equal("0xnew"))
			})
		})

		When("the save fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.SaveReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(repo.SaveWallet(ctx, chatID, "0xabc")).To(MatchError(fakeErr))
			})
		})

		When("the lookup fails with an unexpected error", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("does not attempt the save", func() {
				Expect(repo.SaveWallet(ctx, chatID, "0xabc")).To(MatchError(fakeErr))
				Expect(fakeStorage.SaveCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Wallet", func() {
		When("the row exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("chat_id"))
					Expect(value).To(Equal(chatID))
					prefs := entity.(*repository.UserPrefs)
					*prefs = repository.UserPrefs{ChatID: chatID, Wallet: "0xabc"}
					return nil
				}
			})

			It("returns the stored wallet", func() {
				wallet, err := repo.Wallet(ctx, chatID)
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet).To(Equal("0xabc"))
			})
		})

		When("no row exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns empty without error", func() {
				wallet, err := repo.Wallet(ctx, chatID)
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet).To(BeEmpty())
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("returns the error", func() {
				_, err := repo.Wallet(ctx, chatID)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SaveAsset and Asset", func() {
		BeforeEach(func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
		})

		It("round-trips through the storage record", func() {
			Expect(repo.SaveAsset(ctx, chatID, "usdt")).To(Succeed())

			_, record := fakeStorage.SaveArgsForCall(0)
			prefs := record.(*repository.UserPrefs)
			Expect(prefs.Asset).To(Equal("usdt"))
		})

		It("reads back empty when nothing is stored", func() {
			asset, err := repo.Asset(ctx, chatID)
			Expect(err).NotTo(HaveOccurred())
			Expect(asset).To(BeEmpty())
		})
	})

	Describe("SaveState and State", func() {
		BeforeEach(func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
		})

		It("stores conversational state keyed by chat", func() {
			Expect(repo.SaveState(ctx, chatID, "waiting_period")).To(Succeed())

			_, record := fakeStorage.SaveArgsForCall(0)
			prefs := record.(*repository.UserPrefs)
			Expect(prefs.ChatID).To(Equal(chatID))
			Expect(prefs.State).To(Equal("waiting_period"))
		})

		It("reads back empty when nothing is stored", func() {
			state, err := repo.State(ctx, chatID)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeEmpty())
		})
	})
})
