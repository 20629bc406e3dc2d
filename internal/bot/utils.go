package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// reply sends plain text in response to a message and registers the sent
// message for moderation. Send failures are logged and swallowed.
func (b *Bot) reply(message *tgbotapi.Message, text string) {
	if err := b.replyWithMode(message, text, ""); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID),
		)
	}
}

// replyWithMode sends a reply with the given parse mode ("" = plain text)
// and registers the sent message ID in the sent log.
func (b *Bot) replyWithMode(message *tgbotapi.Message, text, parseMode string) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID
	msg.ParseMode = parseMode

	sent, err := b.api.Send(msg)
	if err != nil {
		return err
	}
	b.sent.add(message.Chat.ID, sent.MessageID)
	return nil
}

// notifyModerator sends to the configured moderator chat, best effort.
func (b *Bot) notifyModerator(text string) {
	if b.moderatorChatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(b.moderatorChatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to notify moderator chat",
			zap.Error(err),
			zap.Int64("moderator_chat_id", b.moderatorChatID),
		)
	}
}

// sendTyping shows the typing indicator while the model works. Best effort.
func (b *Bot) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(action); err != nil {
		b.logger.Debug("Failed to send typing indicator", zap.Error(err))
	}
}

// NotifyAdvisorsStartup tells each advisor the bot restarted, so they know
// the activation flag is back at its configured default.
func (b *Bot) NotifyAdvisorsStartup(active bool) {
	text := "✅ Bot restarted and active"
	if !active {
		text = "⏸ Bot restarted and waiting for /start"
	}

	for _, advisorID := range b.advisors.IDs() {
		msg := tgbotapi.NewMessage(advisorID, text)
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Warn("Failed to notify advisor about restart",
				zap.Error(err),
				zap.Int64("advisor_id", advisorID),
			)
		}
	}
}

// sanitizeMarkdown repairs the formatting mistakes Telegram rejects whole
// messages for: unmatched *, _, ` and unbalanced square brackets.
func sanitizeMarkdown(text string) string {
	if text == "" {
		return text
	}

	for _, char := range []string{"*", "_", "`"} {
		if strings.Count(text, char)%2 != 0 {
			if last := strings.LastIndex(text, char); last >= 0 {
				text = text[:last] + `\` + text[last:]
			}
		}
	}

	if strings.Count(text, "[") != strings.Count(text, "]") {
		text = strings.ReplaceAll(text, "[", `\[`)
		text = strings.ReplaceAll(text, "]", `\]`)
	}

	return text
}

// messageLink builds a t.me deep link to a message in a group chat.
// Supergroup IDs are prefixed with -100 on the wire but not in links.
func messageLink(chatID int64, messageID int) string {
	id := fmt.Sprintf("%d", chatID)
	id = strings.TrimPrefix(id, "-100")
	id = strings.TrimPrefix(id, "-")
	return fmt.Sprintf("https://t.me/c/%s/%d", id, messageID)
}

// userDisplayName renders a user for moderator notifications.
func userDisplayName(user *tgbotapi.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if user.UserName != "" {
		if name == "" {
			return "@" + user.UserName
		}
		return fmt.Sprintf("%s (@%s)", name, user.UserName)
	}
	if name == "" {
		return "unknown"
	}
	return name
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
