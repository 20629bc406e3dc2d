package bot

import (
	"context"
	"encoding/json"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// allowedUpdates limits what Telegram delivers. message_reaction must be
// requested explicitly or the platform never sends it.
var allowedUpdates = []string{"message", "message_reaction"}

const (
	pollTimeoutSeconds = 50
	pollRetryDelay     = 3 * time.Second
)

// Start runs the bot in polling mode until the context is cancelled.
//
// The long-poll loop calls getUpdates directly instead of going through
// GetUpdatesChan: the library's Update type silently drops the
// message_reaction payload this bot moderates with.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot in polling mode")

	// Remove webhook (if any was set previously)
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		b.logger.Warn("Failed to delete webhook", zap.Error(err))
	}

	offset := 0
	b.logger.Info("Bot started successfully. Waiting for updates...")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Polling stopped")
			return ctx.Err()
		default:
		}

		updates, err := b.fetchUpdates(offset)
		if err != nil {
			b.logger.Error("Failed to fetch updates", zap.Error(err))
			time.Sleep(pollRetryDelay)
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			b.HandleUpdate(update)
		}
	}
}

// fetchUpdates performs one getUpdates long poll and decodes the raw JSON
// into the reaction-aware envelope.
func (b *Bot) fetchUpdates(offset int) ([]Update, error) {
	params := make(tgbotapi.Params)
	params.AddNonZero("offset", offset)
	params.AddNonZero("timeout", pollTimeoutSeconds)
	if err := params.AddInterface("allowed_updates", allowedUpdates); err != nil {
		return nil, err
	}

	resp, err := b.api.MakeRequest("getUpdates", params)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// StartWebhook registers the webhook URL with Telegram. Updates then arrive
// via the HTTP endpoint served by the app.
func (b *Bot) StartWebhook(webhookURL string) error {
	b.logger.Info("Setting up webhook", zap.String("webhook_url", webhookURL))

	webhookConfig, err := tgbotapi.NewWebhook(webhookURL + "/telegram-webhook")
	if err != nil {
		return err
	}
	webhookConfig.MaxConnections = 40
	webhookConfig.AllowedUpdates = allowedUpdates

	if _, err := b.api.Request(webhookConfig); err != nil {
		b.logger.Error("Failed to set webhook",
			zap.Error(err),
			zap.String("webhook_url", webhookURL),
		)
		return err
	}

	b.logger.Info("Bot configured for webhook mode")
	return nil
}
