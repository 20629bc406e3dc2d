package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"faqbot/internal/llm"
	"faqbot/internal/models"
)

// handleStudentMessage runs the question-answering path for one inbound
// text message.
func (b *Bot) handleStudentMessage(ctx context.Context, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	chatID := message.Chat.ID
	userID := message.From.ID

	if len(b.groupChats) > 0 && !b.groupChats[chatID] {
		b.logger.Info("Message from unlisted chat ignored", zap.Int64("chat_id", chatID))
		return
	}

	if b.advisors.IsAdvisor(userID) {
		b.logger.Debug("Advisor message ignored", zap.Int64("user_id", userID))
		return
	}

	// The load-bearing check: while deactivated the bot spends no API
	// quota and sends nothing.
	if !b.gate.ShouldRespond() {
		b.logger.Info("Bot inactive, message ignored", zap.Int64("chat_id", chatID))
		return
	}

	b.sendTyping(chatID)

	reply, err := b.generator.Answer(ctx, text)
	if err != nil {
		b.logger.Error("Answer generation failed",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int64("user_id", userID),
		)
		b.recordQuestion(ctx, message, models.QuestionFailed, 0)
		b.handleUnanswerable(message, text, err)
		return
	}

	switch reply.Kind {
	case llm.KindNotAQuestion:
		b.logger.Info("Message identified as not a question", zap.Int64("chat_id", chatID))
		b.recordQuestion(ctx, message, models.QuestionNotAQuestion, 0)

	case llm.KindCannotAnswer:
		b.logger.Info("No answer found in FAQ",
			zap.Int64("chat_id", chatID),
			zap.Int64("user_id", userID),
		)
		b.recordQuestion(ctx, message, models.QuestionCannotAnswer, 0)
		b.handleUnanswerable(message, text, nil)

	case llm.KindAnswer:
		b.recordQuestion(ctx, message, models.QuestionAnswered, uint32(len(reply.Text)))
		b.deliverAnswer(message, reply.Text)
	}
}

// handleUnanswerable tags the advisor group in the chat and alerts the
// moderator chat with enough context to follow up.
func (b *Bot) handleUnanswerable(message *tgbotapi.Message, question string, cause error) {
	b.reply(message, fmt.Sprintf("I'm not sure how to answer that. %s, could you please help?", b.advisorTag))

	if b.moderatorChatID == 0 {
		return
	}

	chatTitle := message.Chat.Title
	if chatTitle == "" {
		chatTitle = fmt.Sprintf("Chat %d", message.Chat.ID)
	}

	var text strings.Builder
	text.WriteString("❓ Student question needs help\n")
	text.WriteString(fmt.Sprintf("Chat: %s (ID: %d)\n", chatTitle, message.Chat.ID))
	text.WriteString(fmt.Sprintf("User: %s (ID: %d)\n", userDisplayName(message.From), message.From.ID))
	text.WriteString(fmt.Sprintf("Question: %s\n", truncate(question, 500)))
	text.WriteString(fmt.Sprintf("Link: %s", messageLink(message.Chat.ID, message.MessageID)))
	if cause != nil {
		text.WriteString(fmt.Sprintf("\nError: %v", cause))
	}

	b.notifyModerator(text.String())
}

// deliverAnswer tries Markdown first, then a sanitized copy, then plain
// text. Telegram rejects the whole message on a Markdown parse error, so
// each fallback strips a layer of formatting.
func (b *Bot) deliverAnswer(message *tgbotapi.Message, answer string) {
	attempts := []struct {
		method string
		text   string
		mode   string
	}{
		{"markdown", answer, tgbotapi.ModeMarkdown},
		{"sanitized_markdown", sanitizeMarkdown(answer), tgbotapi.ModeMarkdown},
		{"plain_text", answer, ""},
	}

	for _, attempt := range attempts {
		if err := b.replyWithMode(message, attempt.text, attempt.mode); err != nil {
			b.logger.Debug("Answer delivery attempt failed",
				zap.String("method", attempt.method),
				zap.Error(err),
			)
			continue
		}
		b.logger.Info("Question answered",
			zap.Int64("chat_id", message.Chat.ID),
			zap.String("method", attempt.method),
			zap.Int("answer_length", len(attempt.text)),
		)
		return
	}

	b.logger.Error("All delivery attempts failed",
		zap.Int64("chat_id", message.Chat.ID),
		zap.Int("answer_length", len(answer)),
	)
	if b.moderatorChatID != 0 {
		b.notifyModerator(fmt.Sprintf(
			"🚨 Failed to deliver an answer\nUser: %s (ID: %d)\nQuestion: %s\n\nAnswer:\n%s",
			userDisplayName(message.From), message.From.ID,
			truncate(message.Text, 300), truncate(answer, 1000)))
	}
}

// recordQuestion writes the audit row. Storage failures are logged and
// swallowed so the answering path never depends on the database.
func (b *Bot) recordQuestion(ctx context.Context, message *tgbotapi.Message, status models.QuestionStatus, answerLength uint32) {
	err := b.db.RecordQuestion(ctx, models.QuestionRecord{
		AskedAt:      time.Now(),
		ChatID:       message.Chat.ID,
		UserID:       message.From.ID,
		MessageID:    int64(message.MessageID),
		Question:     message.Text,
		Status:       status,
		AnswerLength: answerLength,
	})
	if err != nil {
		b.logger.Warn("Failed to record question", zap.Error(err))
	}
}
