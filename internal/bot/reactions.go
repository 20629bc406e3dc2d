package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"faqbot/internal/models"
)

// handleReaction applies the moderation rule: an advisor adding the
// downvote emoji to a message the bot sent deletes that message.
//
// Reactions are ambient, high-volume noise, so every non-matching case is
// a silent no-op; only commands get explicit denials.
func (b *Bot) handleReaction(ctx context.Context, reaction *MessageReactionUpdated) {
	if reaction.User == nil {
		// Anonymous/channel reactions carry no principal to authorize.
		return
	}

	chatID := reaction.Chat.ID
	userID := reaction.User.ID

	if !b.advisors.IsAdvisor(userID) {
		b.logger.Debug("Non-advisor reaction ignored",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
		)
		return
	}

	if !reaction.hasNewEmoji(b.downvoteEmoji) {
		return
	}

	// Only the bot's own output is ever deleted, never user content.
	if !b.sent.contains(chatID, reaction.MessageID) {
		b.logger.Debug("Downvote on a message the bot did not send, ignored",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", reaction.MessageID),
		)
		return
	}

	// The moderator chat is an audit trail; nothing gets deleted there.
	if b.moderatorChatID != 0 && chatID == b.moderatorChatID {
		b.logger.Info("Skipping deletion in moderator chat", zap.Int64("chat_id", chatID))
		return
	}

	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, reaction.MessageID)); err != nil {
		// Already deleted or missing platform permission. Never fatal:
		// the next reaction must still be processed.
		b.logger.Error("Failed to delete message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", reaction.MessageID),
		)
		return
	}

	b.sent.remove(chatID, reaction.MessageID)

	b.logger.Info("Message deleted by advisor downvote",
		zap.Int64("chat_id", chatID),
		zap.Int("message_id", reaction.MessageID),
		zap.Int64("advisor_id", userID),
	)

	if err := b.db.RecordModeration(ctx, models.ModerationRecord{
		DeletedAt: time.Now(),
		ChatID:    chatID,
		MessageID: int64(reaction.MessageID),
		AdvisorID: userID,
	}); err != nil {
		b.logger.Warn("Failed to record moderation event", zap.Error(err))
	}

	if b.moderatorChatID != 0 {
		b.notifyModerator(fmt.Sprintf(
			"🗑 Bot message %d deleted in chat %d by advisor %s (ID: %d)",
			reaction.MessageID, chatID, userDisplayName(reaction.User), userID))
	}
}
