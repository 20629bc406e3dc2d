package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"faqbot/internal/gate"
)

const deniedReply = "Sorry, this command is only available to advisors."

// handleCommand routes advisor commands. Unknown commands are ignored:
// group chats are full of commands addressed to other bots.
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "stop":
		b.handleStop(message)
	case "status":
		b.handleStatus(ctx, message)
	default:
		b.logger.Debug("Ignoring unknown command",
			zap.String("command", message.Command()),
			zap.Int64("chat_id", message.Chat.ID),
		)
	}
}

// handleStart activates the bot (advisors only).
func (b *Bot) handleStart(message *tgbotapi.Message) {
	requester := message.From.ID

	if err := b.gate.Activate(requester); err != nil {
		b.denyCommand(message, "start", err)
		return
	}

	b.logger.Info("Bot activated",
		zap.Int64("advisor_id", requester),
		zap.Int64("chat_id", message.Chat.ID),
	)
	b.reply(message, "✅ Bot is now active and will respond to student questions.")
}

// handleStop deactivates the bot (advisors only).
func (b *Bot) handleStop(message *tgbotapi.Message) {
	requester := message.From.ID

	if err := b.gate.Deactivate(requester); err != nil {
		b.denyCommand(message, "stop", err)
		return
	}

	b.logger.Info("Bot deactivated",
		zap.Int64("advisor_id", requester),
		zap.Int64("chat_id", message.Chat.ID),
	)
	b.reply(message, "⏹ Bot is now inactive and will not respond to student questions.")
}

// handleStatus reports the activation flag and operational counters
// (advisors only, read-only).
func (b *Bot) handleStatus(ctx context.Context, message *tgbotapi.Message) {
	requester := message.From.ID

	active, err := b.gate.Status(requester)
	if err != nil {
		b.denyCommand(message, "status", err)
		return
	}

	var text strings.Builder
	text.WriteString("📊 Bot Status\n\n")
	if active {
		text.WriteString("• Bot: 🟢 Active\n")
	} else {
		text.WriteString("• Bot: 🔴 Inactive\n")
	}
	text.WriteString(fmt.Sprintf("• Advisors: %d configured\n", b.advisors.Count()))
	if b.moderatorChatID != 0 {
		text.WriteString("• Moderator chat: ✅ configured\n")
	} else {
		text.WriteString("• Moderator chat: ❌ not configured\n")
	}

	since := time.Now().Add(-24 * time.Hour)
	if answered, err := b.db.CountQuestionsSince(ctx, since); err != nil {
		b.logger.Warn("Failed to count answered questions", zap.Error(err))
	} else {
		text.WriteString(fmt.Sprintf("• Answered (24h): %d\n", answered))
	}
	if deleted, err := b.db.CountModerationsSince(ctx, since); err != nil {
		b.logger.Warn("Failed to count moderation events", zap.Error(err))
	} else {
		text.WriteString(fmt.Sprintf("• Deleted by advisors (24h): %d\n", deleted))
	}

	b.logger.Info("Status command executed",
		zap.Int64("advisor_id", requester),
		zap.Bool("active", active),
	)
	b.reply(message, text.String())
}

// denyCommand answers a privileged command from a non-advisor. Unlike
// reactions, commands are deliberate, so the denial is explicit.
func (b *Bot) denyCommand(message *tgbotapi.Message, command string, err error) {
	if !errors.Is(err, gate.ErrNotAuthorized) {
		b.logger.Error("Command failed", zap.String("command", command), zap.Error(err))
		return
	}

	b.logger.Warn("Non-advisor attempted privileged command",
		zap.String("command", command),
		zap.Int64("user_id", message.From.ID),
		zap.Int64("chat_id", message.Chat.ID),
	)
	b.reply(message, deniedReply)
}
