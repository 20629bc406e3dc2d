package faq

import (
	"os"

	"go.uber.org/zap"
)

// Load reads the FAQ document used to ground LLM answers. A missing or empty
// file is not fatal: the bot still starts and simply reports that it cannot
// answer, so the error is logged and an empty string returned.
func Load(path string, logger *zap.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to load FAQ file, bot will not be able to answer questions",
			zap.String("path", path),
			zap.Error(err),
		)
		return ""
	}

	content := string(data)
	if content == "" {
		logger.Warn("FAQ file is empty", zap.String("path", path))
		return ""
	}

	logger.Info("FAQ content loaded",
		zap.String("path", path),
		zap.Int("bytes", len(content)),
	)
	return content
}
