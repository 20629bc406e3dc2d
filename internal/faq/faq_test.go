package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.md")
	require.NoError(t, os.WriteFile(path, []byte("# FAQ\n\nQ: When is the exam?\nA: June 12."), 0o644))

	content := Load(path, zap.NewNop())
	assert.Contains(t, content, "June 12")
}

func TestLoad_MissingFile(t *testing.T) {
	content := Load(filepath.Join(t.TempDir(), "nope.md"), zap.NewNop())
	assert.Empty(t, content)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.md")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	content := Load(path, zap.NewNop())
	assert.Empty(t, content)
}
