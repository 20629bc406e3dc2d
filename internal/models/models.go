package models

import "time"

// QuestionStatus is the outcome of handling a student message.
type QuestionStatus string

const (
	QuestionAnswered     QuestionStatus = "answered"
	QuestionCannotAnswer QuestionStatus = "cannot_answer"
	QuestionNotAQuestion QuestionStatus = "not_a_question"
	QuestionFailed       QuestionStatus = "failed"
)

// QuestionRecord is one audit row for a processed student message.
type QuestionRecord struct {
	AskedAt      time.Time
	ChatID       int64
	UserID       int64
	MessageID    int64
	Question     string
	Status       QuestionStatus
	AnswerLength uint32
}

// ModerationRecord is one audit row for a reaction-triggered deletion.
type ModerationRecord struct {
	DeletedAt time.Time
	ChatID    int64
	MessageID int64
	AdvisorID int64
}
