package config

import (
	"fmt"
	"os"
	"strconv"

	"faqbot/internal/auth"
)

// Config holds the application configuration
type Config struct {
	TelegramToken  string
	AdvisorUserIDs []int64

	// Answer generator
	OpenAIAPIKey string
	OpenAIModel  string
	FAQPath      string

	// Moderation
	ModeratorChatID int64   // chat notified about unanswerable questions and deletions (0 = disabled)
	GroupChatIDs    []int64 // when non-empty, only these chats are answered
	AdvisorTag      string  // mention appended to "cannot answer" replies
	DownvoteEmoji   string  // reaction that triggers deletion of a bot message

	// Activation default at startup; advisors flip it at runtime via /start and /stop
	ActiveOnStart bool

	// Bot mode configuration
	WebhookMode bool   // If true, use webhook mode; if false, use polling mode
	WebhookURL  string // URL for webhook (required if WebhookMode is true)

	// ClickHouse configuration
	ClickHouseHost     string
	ClickHousePort     int
	ClickHouseDatabase string
	ClickHouseUser     string
	ClickHousePassword string
	ClickHouseUseTLS   bool

	UseMockDB bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	// Telegram Bot Token (required)
	config.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	// OpenAI credentials (required - the bot cannot answer without them)
	config.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if config.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	config.OpenAIModel = os.Getenv("OPENAI_MODEL")
	if config.OpenAIModel == "" {
		config.OpenAIModel = "gpt-4o-mini"
	}

	config.FAQPath = os.Getenv("FAQ_PATH")
	if config.FAQPath == "" {
		config.FAQPath = "faq.md"
	}

	// Advisor allow-list. May be empty: nobody gets privileges then, the
	// bot still runs. Malformed entries are fatal.
	advisorIDs, err := auth.ParseIDList(os.Getenv("ADVISOR_USER_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVISOR_USER_IDS: %w", err)
	}
	config.AdvisorUserIDs = advisorIDs

	// Moderator chat (optional)
	if raw := os.Getenv("MODERATOR_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MODERATOR_CHAT_ID: %w", err)
		}
		config.ModeratorChatID = id
	}

	// Group chat allow-list (optional; empty means answer everywhere)
	groupIDs, err := auth.ParseIDList(os.Getenv("GROUP_CHAT_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid GROUP_CHAT_IDS: %w", err)
	}
	config.GroupChatIDs = groupIDs

	config.AdvisorTag = os.Getenv("ADVISOR_TAG")
	if config.AdvisorTag == "" {
		config.AdvisorTag = "@advisors"
	}

	config.DownvoteEmoji = os.Getenv("DOWNVOTE_EMOJI")
	if config.DownvoteEmoji == "" {
		config.DownvoteEmoji = "👎"
	}

	// Activation default. The bot answers right after startup unless
	// ACTIVE_ON_START=false makes an explicit advisor /start mandatory.
	config.ActiveOnStart = true
	if raw := os.Getenv("ACTIVE_ON_START"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ACTIVE_ON_START: %w", err)
		}
		config.ActiveOnStart = active
	}

	// Bot mode configuration
	config.WebhookMode = os.Getenv("WEBHOOK_MODE") == "true"
	if config.WebhookMode {
		config.WebhookURL = os.Getenv("WEBHOOK_URL")
		if config.WebhookURL == "" {
			return nil, fmt.Errorf("WEBHOOK_URL is required when WEBHOOK_MODE is true")
		}
	}

	// Use Mock DB (default: false)
	config.UseMockDB = os.Getenv("USE_MOCK_DB") == "true"

	// ClickHouse configuration (required if not using mock)
	if !config.UseMockDB {
		config.ClickHouseHost = os.Getenv("CLICKHOUSE_HOST")
		if config.ClickHouseHost == "" {
			return nil, fmt.Errorf("CLICKHOUSE_HOST is required when USE_MOCK_DB is not set")
		}

		portStr := os.Getenv("CLICKHOUSE_PORT")
		if portStr == "" {
			config.ClickHousePort = 9000 // Default ClickHouse native port
		} else {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return nil, fmt.Errorf("invalid CLICKHOUSE_PORT: %w", err)
			}
			config.ClickHousePort = port
		}

		config.ClickHouseDatabase = os.Getenv("CLICKHOUSE_DATABASE")
		if config.ClickHouseDatabase == "" {
			config.ClickHouseDatabase = "default"
		}

		config.ClickHouseUser = os.Getenv("CLICKHOUSE_USER")
		if config.ClickHouseUser == "" {
			config.ClickHouseUser = "default"
		}

		config.ClickHousePassword = os.Getenv("CLICKHOUSE_PASSWORD")
		// Password is optional, can be empty

		config.ClickHouseUseTLS = os.Getenv("CLICKHOUSE_USE_TLS") == "true"
	}

	return config, nil
}
