package ch

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"faqbot/internal/models"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type ClickHouseDB struct {
	conn clickhouse.Conn
}

// NewClickHouseDB creates a new ClickHouse database connection
func NewClickHouseDB(host string, port int, database, user, password string, useTLS bool) (*ClickHouseDB, error) {
	addr := fmt.Sprintf("%s:%d", host, port)

	options := &clickhouse.Options{
		Addr:     []string{addr},
		Protocol: clickhouse.Native,
		Auth: clickhouse.Auth{
			Database: database,
			Username: user,
			Password: password,
		},
	}

	if useTLS {
		options.TLS = &tls.Config{
			InsecureSkipVerify: false,
		}
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	// Test the connection
	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &ClickHouseDB{conn: conn}, nil
}

// Initialize is a no-op - tables are managed via migrations
func (db *ClickHouseDB) Initialize(ctx context.Context) error {
	// Tables are managed via migrations (see migrations/ directory)
	// This method is kept for interface compatibility
	return nil
}

// RecordQuestion stores the outcome of one processed student message.
func (db *ClickHouseDB) RecordQuestion(ctx context.Context, record models.QuestionRecord) error {
	err := db.conn.Exec(ctx,
		`INSERT INTO questions (asked_at, chat_id, user_id, message_id, question, status, answer_length) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.AskedAt, record.ChatID, record.UserID, record.MessageID,
		record.Question, string(record.Status), record.AnswerLength)
	if err != nil {
		return fmt.Errorf("failed to record question: %w", err)
	}
	return nil
}

// RecordModeration stores one reaction-triggered deletion.
func (db *ClickHouseDB) RecordModeration(ctx context.Context, record models.ModerationRecord) error {
	err := db.conn.Exec(ctx,
		`INSERT INTO moderation_events (deleted_at, chat_id, message_id, advisor_id) VALUES (?, ?, ?, ?)`,
		record.DeletedAt, record.ChatID, record.MessageID, record.AdvisorID)
	if err != nil {
		return fmt.Errorf("failed to record moderation event: %w", err)
	}
	return nil
}

// CountQuestionsSince returns how many questions got an answer since the given time.
func (db *ClickHouseDB) CountQuestionsSince(ctx context.Context, since time.Time) (uint64, error) {
	row := db.conn.QueryRow(ctx,
		`SELECT count() FROM questions WHERE status = 'answered' AND asked_at >= ?`, since)

	var count uint64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// CountModerationsSince returns how many messages advisors deleted since the given time.
func (db *ClickHouseDB) CountModerationsSince(ctx context.Context, since time.Time) (uint64, error) {
	row := db.conn.QueryRow(ctx,
		`SELECT count() FROM moderation_events WHERE deleted_at >= ?`, since)

	var count uint64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count moderation events: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (db *ClickHouseDB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
