package bot

import (
	"context"

	"go.uber.org/zap"
)

// HandleUpdate dispatches a single update. Each update is self-contained:
// panics are recovered so one bad update never takes down the loop.
func (b *Bot) HandleUpdate(update Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic while handling update",
				zap.Any("panic", r),
				zap.Int("update_id", update.UpdateID),
			)
		}
	}()

	ctx := context.Background()

	if update.MessageReaction != nil {
		b.handleReaction(ctx, update.MessageReaction)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		return
	}

	if update.Message.IsCommand() {
		b.handleCommand(ctx, update.Message)
		return
	}

	b.handleStudentMessage(ctx, update.Message)
}
