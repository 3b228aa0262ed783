package repository

// UserPrefs is one Telegram chat's saved preferences: the wallet under
// analysis, the selected asset and the conversation state.
type UserPrefs struct {
	ChatID int64  `gorm:"primaryKey;autoIncrement:false"`
	Wallet string `gorm:"size:42"` // Ethereum address (0x + 40 hex), lower-cased
	Asset  string `gorm:"size:8"`  // "eth" or "usdt"
	State  string `gorm:"size:32"` // e.g. "waiting_period", empty when idle
}
