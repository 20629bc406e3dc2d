package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Reply
	}{
		{"answer", "The exam is on June 12.", Reply{Kind: KindAnswer, Text: "The exam is on June 12."}},
		{"answer trimmed", "  answer \n", Reply{Kind: KindAnswer, Text: "answer"}},
		{"not a question", "[NOT_A_QUESTION]", Reply{Kind: KindNotAQuestion}},
		{"cannot answer", "[CANNOT_ANSWER]", Reply{Kind: KindCannotAnswer}},
		{"empty treated as cannot answer", "   ", Reply{Kind: KindCannotAnswer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.raw))
		})
	}
}

func TestSystemPrompt(t *testing.T) {
	prompt := systemPrompt("Q: When is the exam?\nA: June 12.")

	assert.Contains(t, prompt, "--- BEGIN FAQ ---")
	assert.Contains(t, prompt, "When is the exam?")
	assert.Contains(t, prompt, notAQuestionMarker)
	assert.Contains(t, prompt, cannotAnswerMarker)
}

// Without FAQ content the client must not touch the model at all, so a nil
// model is safe here.
func TestAnswer_NoFAQShortCircuits(t *testing.T) {
	c := &Client{faq: "", logger: zap.NewNop()}

	reply, err := c.Answer(context.Background(), "when is the exam?")
	require.NoError(t, err)
	assert.Equal(t, KindCannotAnswer, reply.Kind)
}

func TestAnswer_BlankQuestionShortCircuits(t *testing.T) {
	c := &Client{faq: "some faq", logger: zap.NewNop()}

	reply, err := c.Answer(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, KindNotAQuestion, reply.Kind)
}
