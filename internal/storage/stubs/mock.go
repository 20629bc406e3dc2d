package stubs

import (
	"context"
	"sync"
	"time"

	"faqbot/internal/models"
)

// MockDB is an in-memory implementation of the Storage interface for tests
// and for running without ClickHouse (USE_MOCK_DB=true).
type MockDB struct {
	mu          sync.RWMutex
	questions   []models.QuestionRecord
	moderations []models.ModerationRecord
}

// NewMockDB creates a new mock database.
func NewMockDB() *MockDB {
	return &MockDB{}
}

// Initialize does nothing for the mock.
func (m *MockDB) Initialize(ctx context.Context) error {
	return nil
}

// RecordQuestion appends a question audit row.
func (m *MockDB) RecordQuestion(ctx context.Context, record models.QuestionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.questions = append(m.questions, record)
	return nil
}

// RecordModeration appends a moderation audit row.
func (m *MockDB) RecordModeration(ctx context.Context, record models.ModerationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.moderations = append(m.moderations, record)
	return nil
}

// CountQuestionsSince counts answered questions newer than since.
func (m *MockDB) CountQuestionsSince(ctx context.Context, since time.Time) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count uint64
	for _, q := range m.questions {
		if q.Status == models.QuestionAnswered && !q.AskedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// CountModerationsSince counts deletions newer than since.
func (m *MockDB) CountModerationsSince(ctx context.Context, since time.Time) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count uint64
	for _, r := range m.moderations {
		if !r.DeletedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// Questions returns a copy of all recorded question rows, newest last.
// Test helper, not part of the Storage interface.
func (m *MockDB) Questions() []models.QuestionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.QuestionRecord, len(m.questions))
	copy(out, m.questions)
	return out
}

// Moderations returns a copy of all recorded moderation rows.
// Test helper, not part of the Storage interface.
func (m *MockDB) Moderations() []models.ModerationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.ModerationRecord, len(m.moderations))
	copy(out, m.moderations)
	return out
}

// Close does nothing for the mock.
func (m *MockDB) Close() error {
	return nil
}
