package bot

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"faqbot/internal/auth"
	"faqbot/internal/gate"
	"faqbot/internal/llm"
	"faqbot/internal/storage/stubs"
)

// fakeAPI records outgoing Telegram calls instead of hitting the network.
type fakeAPI struct {
	mu           sync.Mutex
	sentMessages []tgbotapi.MessageConfig
	deletes      []tgbotapi.DeleteMessageConfig
	nextID       int
	failMarkdown bool  // reject sends with ParseMode=Markdown
	failAllSends bool  // reject every send
	requestErr   error // returned by Request for delete configs
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, nil
	}
	if f.failAllSends {
		return tgbotapi.Message{}, errors.New("send failed")
	}
	if f.failMarkdown && msg.ParseMode == tgbotapi.ModeMarkdown {
		return tgbotapi.Message{}, errors.New("bad request: can't parse entities")
	}

	f.nextID++
	f.sentMessages = append(f.sentMessages, msg)
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if del, ok := c.(tgbotapi.DeleteMessageConfig); ok {
		if f.requestErr != nil {
			return nil, f.requestErr
		}
		f.deletes = append(f.deletes, del)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true, Result: []byte("[]")}, nil
}

func (f *fakeAPI) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	texts := make([]string, len(f.sentMessages))
	for i, m := range f.sentMessages {
		texts[i] = m.Text
	}
	return texts
}

// fakeGenerator returns a canned reply and counts calls.
type fakeGenerator struct {
	reply llm.Reply
	err   error
	calls int
}

func (g *fakeGenerator) Answer(ctx context.Context, question string) (llm.Reply, error) {
	g.calls++
	return g.reply, g.err
}

// newTestBot builds a bot wired to fakes: advisors 111 and 222, moderator
// chat -900, mock storage.
func newTestBot(api *fakeAPI, generator AnswerGenerator, activeOnStart bool) (*Bot, *stubs.MockDB) {
	advisors := auth.NewAdvisors([]int64{111, 222})
	db := stubs.NewMockDB()

	b := &Bot{
		api:             api,
		db:              db,
		advisors:        advisors,
		gate:            gate.New(advisors, activeOnStart),
		generator:       generator,
		sent:            newSentLog(sentLogLimit),
		moderatorChatID: -900,
		groupChats:      make(map[int64]bool),
		downvoteEmoji:   "👎",
		advisorTag:      "@advisors",
		logger:          zap.NewNop(),
	}
	return b, db
}

func textMessage(userID, chatID int64, messageID int, text string) *tgbotapi.Message {
	msg := &tgbotapi.Message{
		MessageID: messageID,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}
	if len(text) > 0 && text[0] == '/' {
		end := len(text)
		for i, r := range text {
			if r == ' ' {
				end = i
				break
			}
		}
		msg.Entities = []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: end},
		}
	}
	return msg
}

func downvote(userID, chatID int64, messageID int) *MessageReactionUpdated {
	return &MessageReactionUpdated{
		Chat:        tgbotapi.Chat{ID: chatID},
		MessageID:   messageID,
		User:        &tgbotapi.User{ID: userID},
		NewReaction: []ReactionType{{Type: "emoji", Emoji: "👎"}},
	}
}
