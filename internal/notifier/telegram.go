// Package notifier sends Telegram alerts when an offer letter accumulates
// enough community scam reports to be worth a human look.
package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Telegram posts report-threshold alerts to a configured chat.
type Telegram struct {
	bot       *tgbotapi.BotAPI
	chatID    int64
	threshold int
	logger    *zap.Logger
}

// NewTelegram authorizes the bot. Callers treat a nil Telegram as
// "notifications disabled".
func NewTelegram(botToken string, chatID int64, threshold int, logger *zap.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info("Telegram notifier authorized", zap.String("bot", bot.Self.UserName))

	return &Telegram{
		bot:       bot,
		chatID:    chatID,
		threshold: threshold,
		logger:    logger,
	}, nil
}

// ReportRecorded fires an alert the moment a hash reaches the threshold.
// Counts past the threshold stay silent to avoid repeat alerts.
func (t *Telegram) ReportRecorded(offerHash string, count int) {
	if count != t.threshold {
		return
	}

	text := fmt.Sprintf(
		"⚠️ Offer letter %s has been reported as a scam %d times.",
		offerHash, count)

	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.logger.Error("Failed to send telegram alert",
			zap.String("offer_hash", offerHash),
			zap.Error(err))
	}
}
