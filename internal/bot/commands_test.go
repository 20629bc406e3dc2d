package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_AdvisorActivates(t *testing.T) {
	api := &fakeAPI{}
	b, _ := newTestBot(api, &fakeGenerator{}, false)

	b.handleCommand(context.Background(), textMessage(111, -100500, 1, "/start"))

	assert.True(t, b.gate.ShouldRespond())
	texts := api.sentTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "active")
}

func TestCommands_NonAdvisorDenied(t *testing.T) {
	api := &fakeAPI{}
	b, _ := newTestBot(api, &fakeGenerator{}, false)

	// 111 activates, 333 tries to deactivate, 222 checks status.
	b.handleCommand(context.Background(), textMessage(111, -100500, 1, "/start"))
	require.True(t, b.gate.ShouldRespond())

	b.handleCommand(context.Background(), textMessage(333, -100500, 2, "/stop"))
	assert.True(t, b.gate.ShouldRespond(), "denied /stop must not change state")

	texts := api.sentTexts()
	require.Len(t, texts, 2)
	assert.Equal(t, deniedReply, texts[1])

	b.handleCommand(context.Background(), textMessage(222, -100500, 3, "/status"))
	texts = api.sentTexts()
	require.Len(t, texts, 3)
	assert.Contains(t, texts[2], "🟢 Active")
}

func TestCommands_StopDeactivates(t *testing.T) {
	api := &fakeAPI{}
	b, _ := newTestBot(api, &fakeGenerator{}, true)

	b.handleCommand(context.Background(), textMessage(222, -100500, 1, "/stop"))

	assert.False(t, b.gate.ShouldRespond())
	texts := api.sentTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "inactive")
}

func TestCommands_StartIsIdempotent(t *testing.T) {
	api := &fakeAPI{}
	b, _ := newTestBot(api, &fakeGenerator{}, true)

	b.handleCommand(context.Background(), textMessage(111, -100500, 1, "/start"))
	b.handleCommand(context.Background(), textMessage(111, -100500, 2, "/start"))

	assert.True(t, b.gate.ShouldRespond())
	assert.Len(t, api.sentTexts(), 2, "both calls report success")
}

func TestCommands_StatusDoesNotMutate(t *testing.T) {
	api := &fakeAPI{}
	b, _ := newTestBot(api, &fakeGenerator{}, false)

	for i := 0; i < 3; i++ {
		b.handleCommand(context.Background(), textMessage(111, -100500, i+1, "/status"))
		assert.False(t, b.gate.ShouldRespond())
	}

	for _, text := range api.sentTexts() {
		assert.Contains(t, text, "🔴 Inactive")
	}
}

func TestCommands_UnknownIgnored(t *testing.T) {
	api := &fakeAPI{}
	b, _ := newTestBot(api, &fakeGenerator{}, true)

	b.handleCommand(context.Background(), textMessage(111, -100500, 1, "/frobnicate"))

	assert.Empty(t, api.sentTexts())
}
