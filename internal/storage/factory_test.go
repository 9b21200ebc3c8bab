package storage

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenforge/unitcreator/internal/config"
	"github.com/scenforge/unitcreator/internal/storage/file"
	"github.com/scenforge/unitcreator/internal/storage/sqlite"
)

func TestNewBackend(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dbLog := zerolog.New(io.Discard)

	t.Run("file", func(t *testing.T) {
		b, err := NewBackend(config.StorageConfig{
			Type: "file",
			File: config.FileConfig{OutputDir: t.TempDir()},
		}, log, dbLog)
		require.NoError(t, err)
		assert.IsType(t, &file.Backend{}, b)
	})

	t.Run("sqlite", func(t *testing.T) {
		b, err := NewBackend(config.StorageConfig{
			Type: "sqlite",
		}, log, dbLog)
		require.NoError(t, err)
		assert.IsType(t, &sqlite.Backend{}, b)
		require.NoError(t, b.Init())
		assert.NoError(t, b.Close())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewBackend(config.StorageConfig{Type: "tape"}, log, dbLog)
		assert.Error(t, err)
	})
}
