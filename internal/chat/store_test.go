package chat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	tr, fresh, err := Load(filepath.Join(t.TempDir(), "chat.json"))
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Empty(t, tr.Messages)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	tr, fresh, err := Load(path)
	require.NoError(t, err)
	assert.True(t, fresh, "corrupt files should start a fresh transcript")
	assert.Empty(t, tr.Messages)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.json")

	tr := &Transcript{}
	tr.Append(RoleUser, "list all files")
	tr.Append(RoleAssistant, "find . -type f # vity generated")

	require.NoError(t, Save(path, tr))

	loaded, fresh, err := Load(path)
	require.NoError(t, err)
	assert.False(t, fresh)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, RoleUser, loaded.Messages[0].Role)
	assert.Equal(t, "list all files", loaded.Messages[0].Content)

	got, ok := loaded.LastAssistant()
	require.True(t, ok)
	assert.Equal(t, "find . -type f # vity generated", got)
}

func TestSaveStripsContextTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.json")

	tr := &Transcript{}
	tr.Append(RoleUser, WrapContext("fix the error", "$ make\nerror: boom"))
	tr.Append(RoleAssistant, "make clean && make")

	require.NoError(t, Save(path, tr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "terminal_history")
	assert.NotContains(t, string(data), "error: boom")

	loaded, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fix the error", loaded.Messages[0].Content)
}

func TestWrapContext(t *testing.T) {
	t.Run("empty context passes through", func(t *testing.T) {
		assert.Equal(t, "do x", WrapContext("do x", ""))
	})

	t.Run("context wrapped in tags", func(t *testing.T) {
		got := WrapContext("do x", "$ ls")
		assert.True(t, strings.HasPrefix(got, "<terminal_history>"))
		assert.Contains(t, got, "$ ls")
		assert.True(t, strings.HasSuffix(got, "do x"))
	})
}

func TestStripContextTagsIdempotent(t *testing.T) {
	wrapped := WrapContext("prompt", "line1\nline2")
	once := StripContextTags(wrapped)
	assert.Equal(t, "prompt", once)
	assert.Equal(t, once, StripContextTags(once))
}

func TestLastAssistantNone(t *testing.T) {
	tr := &Transcript{}
	tr.Append(RoleUser, "hello")
	_, ok := tr.LastAssistant()
	assert.False(t, ok)
}
