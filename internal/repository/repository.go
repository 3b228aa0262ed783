package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Cracket007/etherscan/internal/db"
)

var ErrPrefsNotFound error = errors.New("preferences not found")

// PrefsRepository stores per-chat preferences. Missing rows read back as
// empty values through the typed getters; writes create the row on demand.
type PrefsRepository struct {
	db Storage
}

func NewPrefsRepository(db Storage) *PrefsRepository {
	return &PrefsRepository{
		db: db,
	}
}

func (r *PrefsRepository) Migrate() error {
	if err := r.db.MigrateTable(&UserPrefs{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *PrefsRepository) SaveWallet(ctx context.Context, chatID int64, wallet string) error {
	prefs, err := r.load(ctx, chatID)
	if err != nil {
		return err
	}

	prefs.Wallet = strings.ToLower(strings.TrimSpace(wallet))
	if err := r.db.Save(ctx, &prefs); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return nil
}

func (r *PrefsRepository) Wallet(ctx context.Context, chatID int64) (string, error) {
	prefs, err := r.get(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrPrefsNotFound) {
			return "", nil
		}
		return "", err
	}
	return prefs.Wallet, nil
}

func (r *PrefsRepository) SaveAsset(ctx context.Context, chatID int64, asset string) error {
	prefs, err := r.load(ctx, chatID)
	if err != nil {
		return err
	}

	prefs.Asset = asset
	if err := r.db.Save(ctx, &prefs); err != nil {
		return fmt.Errorf("save asset: %w", err)
	}
	return nil
}

func (r *PrefsRepository) Asset(ctx context.Context, chatID int64) (string, error) {
	prefs, err := r.get(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrPrefsNotFound) {
			return "", nil
		}
		return "", err
	}
	return prefs.Asset, nil
}

func (r *PrefsRepository) SaveState(ctx context.Context, chatID int64, state string) error {
	prefs, err := r.load(ctx, chatID)
	if err != nil {
		return err
	}

	prefs.State = state
	if err := r.db.Save(ctx, &prefs); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *PrefsRepository) State(ctx context.Context, chatID int64) (string, error) {
	prefs, err := r.get(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrPrefsNotFound) {
			return "", nil
		}
		return "", err
	}
	return prefs.State, nil
}

func (r *PrefsRepository) get(ctx context.Context, chatID int64) (UserPrefs, error) {
	var prefs UserPrefs
	err := r.db.GetOneBy(ctx, "chat_id", chatID, &prefs)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return UserPrefs{}, ErrPrefsNotFound
		}
		return UserPrefs{}, fmt.Errorf("get prefs by chat id: %w", err)
	}
	return prefs, nil
}

// load returns the stored row or a fresh one keyed by the chat id.
func (r *PrefsRepository) load(ctx context.Context, chatID int64) (UserPrefs, error) {
	prefs, err := r.get(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrPrefsNotFound) {
			return UserPrefs{ChatID: chatID}, nil
		}
		return UserPrefs{}, err
	}
	return prefs, nil
}
