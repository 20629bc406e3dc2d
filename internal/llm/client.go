package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Markers the model is instructed to emit instead of free text. These exact
// strings are part of the prompt contract, not user-visible output.
const (
	notAQuestionMarker = "[NOT_A_QUESTION]"
	cannotAnswerMarker = "[CANNOT_ANSWER]"
)

const requestTimeout = 30 * time.Second

// Kind classifies what the model said about a student message.
type Kind int

const (
	// KindAnswer means Text carries an FAQ-grounded answer to send back.
	KindAnswer Kind = iota
	// KindNotAQuestion means the message needs no reply (greeting, chit-chat).
	KindNotAQuestion
	// KindCannotAnswer means the FAQ does not cover the question.
	KindCannotAnswer
)

// Reply is a classified generator response.
type Reply struct {
	Kind Kind
	Text string
}

// Client answers student questions from a static FAQ document via an OpenAI
// chat model.
type Client struct {
	model  llms.Model
	faq    string
	logger *zap.Logger
}

// New creates an OpenAI-backed client. The FAQ content is fixed for the
// process lifetime.
func New(apiKey, modelName, faqContent string, logger *zap.Logger) (*Client, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &Client{
		model:  model,
		faq:    faqContent,
		logger: logger,
	}, nil
}

// Answer sends the question to the model grounded on the FAQ and classifies
// the response. It short-circuits without an API call when there is nothing
// to ground on or nothing was asked.
func (c *Client) Answer(ctx context.Context, question string) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{Kind: KindNotAQuestion}, nil
	}
	if c.faq == "" {
		c.logger.Warn("FAQ content not available, cannot answer")
		return Reply{Kind: KindCannotAnswer}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt(c.faq)),
			llms.TextParts(llms.ChatMessageTypeHuman, question),
		},
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(1000),
	)
	if err != nil {
		c.logger.Error("OpenAI request failed",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)),
		)
		return Reply{}, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("generate content: empty response")
	}

	reply := classify(resp.Choices[0].Content)
	c.logger.Info("LLM response generated",
		zap.Int("question_length", len(question)),
		zap.Int("answer_length", len(reply.Text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return reply, nil
}

// classify maps the raw model output onto the marker contract. An empty
// response is treated as unanswerable rather than sent to the chat.
func classify(raw string) Reply {
	text := strings.TrimSpace(raw)
	switch text {
	case "", cannotAnswerMarker:
		return Reply{Kind: KindCannotAnswer}
	case notAQuestionMarker:
		return Reply{Kind: KindNotAQuestion}
	default:
		return Reply{Kind: KindAnswer, Text: text}
	}
}

func systemPrompt(faqContent string) string {
	return fmt.Sprintf(`You are a helpful AI assistant for students. Your knowledge is limited to the following FAQ:

--- BEGIN FAQ ---
%s
--- END FAQ ---

Instructions:
1. If the user's message is not a question (e.g., greetings, statements), respond with: %s
2. If the message is a question:
   - Answer briefly and clearly using only the FAQ (use bullet points if necessary), combining relevant parts if necessary.
   - Do not mention the FAQ in your answer.
   - If the question cannot be answered with the FAQ, respond with: %s

Ensure your response is in valid Markdown format, with proper syntax for *, _, `+"`"+`, [], and (). Be concise and helpful.
`, faqContent, notAQuestionMarker, cannotAnswerMarker)
}
