package telegram

import tele "gopkg.in/telebot.v3"

const (
	btnAssetETH     = "type_eth"
	btnAssetUSDT    = "type_usdt"
	btnPeriodMonth  = "period_month"
	btnPeriodAll    = "period_all"
	btnPeriodCustom = "period_custom"
	btnBackTokens   = "back_tokens"
	btnBackPeriods  = "back_periods"
)

func assetKeyboard() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(
			m.Data("💎 ETH", btnAssetETH),
			m.Data("💵 USDT", btnAssetUSDT),
		),
	)
	return m
}

// periodKeyboard carries the chosen asset in the callback data so the
// period handlers know which report to build.
func periodKeyboard(asset string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(
			m.Data("🕒 Last month", btnPeriodMonth, asset),
			m.Data("♾ All time", btnPeriodAll, asset),
		),
		m.Row(m.Data("📋 Custom period", btnPeriodCustom, asset)),
		m.Row(m.Data("◀️ Back", btnBackTokens)),
	)
	return m
}

func customPeriodKeyboard() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("◀️ Back", btnBackPeriods)))
	return m
}
