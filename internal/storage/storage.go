package storage

import (
	"context"
	"time"

	"faqbot/internal/models"
)

// Storage defines the audit-log operations the bot depends on. Failures here
// never affect message handling; callers log and move on.
type Storage interface {
	// RecordQuestion stores the outcome of one processed student message.
	RecordQuestion(ctx context.Context, record models.QuestionRecord) error

	// RecordModeration stores one reaction-triggered deletion.
	RecordModeration(ctx context.Context, record models.ModerationRecord) error

	// CountQuestionsSince returns how many questions got an answer
	// (status = answered) since the given time. Used by /status.
	CountQuestionsSince(ctx context.Context, since time.Time) (uint64, error)

	// CountModerationsSince returns how many messages advisors deleted
	// since the given time.
	CountModerationsSince(ctx context.Context, since time.Time) (uint64, error)

	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error
}
