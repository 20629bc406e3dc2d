package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Update extends the library's update with the message_reaction payload.
// tgbotapi v5 predates Bot API 7.0 reactions, so the bot decodes raw update
// JSON (from getUpdates or the webhook) into this envelope itself.
type Update struct {
	tgbotapi.Update
	MessageReaction *MessageReactionUpdated `json:"message_reaction,omitempty"`
}

// MessageReactionUpdated mirrors the Bot API object of the same name.
// Note: it references the target message only by ID; the author of that
// message is not part of the payload.
type MessageReactionUpdated struct {
	Chat        tgbotapi.Chat  `json:"chat"`
	MessageID   int            `json:"message_id"`
	User        *tgbotapi.User `json:"user,omitempty"`
	ActorChat   *tgbotapi.Chat `json:"actor_chat,omitempty"`
	Date        int64          `json:"date"`
	OldReaction []ReactionType `json:"old_reaction"`
	NewReaction []ReactionType `json:"new_reaction"`
}

// ReactionType is one reaction in old_reaction/new_reaction.
type ReactionType struct {
	Type          string `json:"type"`
	Emoji         string `json:"emoji,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// hasNewEmoji reports whether the reaction change added the given emoji.
func (r *MessageReactionUpdated) hasNewEmoji(emoji string) bool {
	for _, reaction := range r.NewReaction {
		if reaction.Type == "emoji" && reaction.Emoji == emoji {
			return true
		}
	}
	return false
}
