package ch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clickhouseTC "github.com/testcontainers/testcontainers-go/modules/clickhouse"

	"faqbot/internal/models"
)

// runMigrations manually runs ClickHouse migrations
func runMigrations(ctx context.Context, db *ClickHouseDB) error {
	_ = db.conn.Exec(ctx, "DROP TABLE IF EXISTS questions")
	_ = db.conn.Exec(ctx, "DROP TABLE IF EXISTS moderation_events")

	err := db.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			asked_at DateTime,
			chat_id Int64,
			user_id Int64,
			message_id Int64,
			question String,
			status LowCardinality(String),
			answer_length UInt32
		) ENGINE = MergeTree()
		ORDER BY asked_at
	`)
	if err != nil {
		return err
	}

	err = db.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS moderation_events (
			deleted_at DateTime,
			chat_id Int64,
			message_id Int64,
			advisor_id Int64
		) ENGINE = MergeTree()
		ORDER BY deleted_at
	`)
	return err
}

// setupTestDB creates a test ClickHouse instance using testcontainers
func setupTestDB(t *testing.T) (*ClickHouseDB, func()) {
	ctx := context.Background()

	clickhouseContainer, err := clickhouseTC.Run(ctx,
		"clickhouse/clickhouse-server:24.3.3.102-alpine",
		clickhouseTC.WithUsername("default"),
		clickhouseTC.WithPassword(""),
		clickhouseTC.WithDatabase("default"),
	)
	require.NoError(t, err, "Failed to start ClickHouse container")

	host, err := clickhouseContainer.Host(ctx)
	require.NoError(t, err)

	port, err := clickhouseContainer.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	db, err := NewClickHouseDB(host, port.Int(), "default", "default", "", false)
	require.NoError(t, err, "Failed to connect to ClickHouse")

	// Run migrations manually (goose doesn't work well with ClickHouse)
	err = runMigrations(ctx, db)
	require.NoError(t, err, "Failed to run migrations")

	cleanup := func() {
		db.Close()
		clickhouseContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestClickHouseDB_RecordQuestion(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	askedAt := time.Now().UTC().Truncate(time.Second)

	err := db.RecordQuestion(ctx, models.QuestionRecord{
		AskedAt:      askedAt,
		ChatID:       -100123,
		UserID:       555,
		MessageID:    42,
		Question:     "when is the exam?",
		Status:       models.QuestionAnswered,
		AnswerLength: 18,
	})
	require.NoError(t, err)

	count, err := db.CountQuestionsSince(ctx, askedAt.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestClickHouseDB_CountQuestionsSince_FiltersStatusAndTime(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	records := []models.QuestionRecord{
		{AskedAt: now.Add(-48 * time.Hour), Status: models.QuestionAnswered, Question: "old"},
		{AskedAt: now, Status: models.QuestionAnswered, Question: "recent"},
		{AskedAt: now, Status: models.QuestionCannotAnswer, Question: "unanswered"},
		{AskedAt: now, Status: models.QuestionNotAQuestion, Question: "hello"},
	}
	for _, r := range records {
		require.NoError(t, db.RecordQuestion(ctx, r))
	}

	count, err := db.CountQuestionsSince(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestClickHouseDB_RecordModeration(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	err := db.RecordModeration(ctx, models.ModerationRecord{
		DeletedAt: now,
		ChatID:    -100777,
		MessageID: 99,
		AdvisorID: 111,
	})
	require.NoError(t, err)

	err = db.RecordModeration(ctx, models.ModerationRecord{
		DeletedAt: now.Add(-72 * time.Hour),
		ChatID:    -100777,
		MessageID: 12,
		AdvisorID: 222,
	})
	require.NoError(t, err)

	count, err := db.CountModerationsSince(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}
