package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"faqbot/internal/auth"
	"faqbot/internal/gate"
	"faqbot/internal/llm"
	"faqbot/internal/storage"
)

// telegramAPI is the subset of *tgbotapi.BotAPI the bot uses. Tests swap in
// a fake that records sends and delete requests.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

// AnswerGenerator produces FAQ-grounded answers for student questions.
type AnswerGenerator interface {
	Answer(ctx context.Context, question string) (llm.Reply, error)
}

// Bot represents the Telegram bot wrapper
type Bot struct {
	api       telegramAPI
	db        storage.Storage
	advisors  *auth.Advisors
	gate      *gate.Gate
	generator AnswerGenerator
	sent      *sentLog

	moderatorChatID int64
	groupChats      map[int64]bool // empty = all chats allowed
	downvoteEmoji   string
	advisorTag      string

	logger *zap.Logger
}
