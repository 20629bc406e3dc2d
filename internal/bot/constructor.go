package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"faqbot/internal/auth"
	"faqbot/internal/gate"
	"faqbot/internal/storage"
)

// Options bundles the collaborators and settings NewBot needs.
type Options struct {
	Token           string
	DB              storage.Storage
	Advisors        *auth.Advisors
	Gate            *gate.Gate
	Generator       AnswerGenerator
	ModeratorChatID int64
	GroupChatIDs    []int64
	DownvoteEmoji   string
	AdvisorTag      string
	Logger          *zap.Logger
}

// NewBot creates a new Telegram bot
func NewBot(opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(opts.Token)
	if err != nil {
		opts.Logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	groupChats := make(map[int64]bool)
	for _, id := range opts.GroupChatIDs {
		groupChats[id] = true
	}

	opts.Logger.Info("Bot created",
		zap.String("bot_username", api.Self.UserName),
		zap.Int("advisors", opts.Advisors.Count()),
	)

	return &Bot{
		api:             api,
		db:              opts.DB,
		advisors:        opts.Advisors,
		gate:            opts.Gate,
		generator:       opts.Generator,
		sent:            newSentLog(sentLogLimit),
		moderatorChatID: opts.ModeratorChatID,
		groupChats:      groupChats,
		downvoteEmoji:   opts.DownvoteEmoji,
		advisorTag:      opts.AdvisorTag,
		logger:          opts.Logger,
	}, nil
}
