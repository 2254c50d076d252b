package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/transdoc/cmd/transdoc"
	"github.com/fwojciec/transdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"translate", "document", "extract", "speak", "languages", "cache"}

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.AudioDir = filepath.Join(t.TempDir(), "audio")
	m.APIKey = ""
	return m
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_FormatHelpListsFormats(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	parser, err := kong.New(&main.CLI{},
		kong.Writers(stdout, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"extract", "--help"})

	help := stdout.String()
	assert.NotContains(t, help, "${formats}")
	for _, tag := range []string{"(plain,", "word-processor,", "pdf)"} {
		assert.Contains(t, help, tag)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		helpOutput := stdout.String()
		for _, cmd := range commands {
			assert.Contains(t, helpOutput, cmd)
		}
		assert.Contains(t, helpOutput, "Usage:")
		assert.Contains(t, helpOutput, "Flags:")
	})

	t.Run("returns error without a command", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("requires an API key to translate", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"translate", "Hello", "--to", "fr"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
		assert.Contains(t, stderr.String(), "GEMINI_API_KEY")
	})

	t.Run("extracts a plain text file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("héllo\nwörld"), 0o644))
		stdout := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"extract", path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "héllo\nwörld\n", stdout.String())
	})

	t.Run("logs extraction when verbose", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"--verbose", "extract", path}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=extract")
		assert.Contains(t, stderr.String(), "format=plain")
	})

	t.Run("purges old cache entries", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		db := sqlite.NewDB(m.DBPath)
		require.NoError(t, db.Open())
		cache := sqlite.NewTranslationCache(db)
		cache.Now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		require.NoError(t, cache.StoreTranslation(context.Background(), "old", "English", "French", "vieux"))
		cache.Now = time.Now
		require.NoError(t, cache.StoreTranslation(context.Background(), "new", "English", "French", "nouveau"))
		require.NoError(t, db.Close())
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"cache", "purge", "--older-than", "24h"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Removed 1 cached translations\n", stdout.String())
	})

	t.Run("lists languages", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"languages"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "zh-CN")
		assert.Contains(t, stdout.String(), "Chinese (Simplified)")
	})
}
