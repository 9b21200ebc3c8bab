package sqlite

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenforge/unitcreator/internal/database"
	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
)

func newTestBackend(t *testing.T, cfg Config) *Backend {
	t.Helper()

	dbm := database.NewManager(zerolog.New(io.Discard))
	db, err := dbm.GetSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	b := New(cfg, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, b.Init())
	t.Cleanup(func() { b.Close() })
	return b
}

func newTestStore(name string) *store.Store {
	s := store.New()
	s.SetMetadata(core.Scenario{
		Name:           name,
		Author:         "J. Keller",
		CreatorVersion: "1.0.0",
	})
	s.AddLeader(core.Leader{
		LeaderID:      "USA_LDR_1",
		Name:          "Col. Hargrove",
		Side:          core.SideFriendly,
		Nationality:   core.NationalityUSA,
		CommandGrade:  core.CommandGradeSenior,
		CombatCommand: core.CombatCommandGround,
	})
	return s
}

func TestSaveAndLoadScenario(t *testing.T) {
	b := newTestBackend(t, Config{})

	require.NoError(t, b.SaveScenario(newTestStore("Fulda Gap")))

	loaded, err := b.LoadScenario("Fulda Gap")
	require.NoError(t, err)
	assert.Equal(t, "Fulda Gap", loaded.Metadata().Name)
	require.Len(t, loaded.Leaders(), 1)
	assert.Equal(t, "Col. Hargrove", loaded.Leaders()[0].Name)
}

func TestDumpLoop_WritesSnapshot(t *testing.T) {
	dumpPath := filepath.Join(t.TempDir(), "dump.db")
	b := newTestBackend(t, Config{
		DumpInterval: 20 * time.Millisecond,
		DumpPath:     dumpPath,
	})

	require.NoError(t, b.SaveScenario(newTestStore("Fulda Gap")))

	require.Eventually(t, func() bool {
		info, err := os.Stat(dumpPath)
		return err == nil && info.Size() > 0
	}, 2*time.Second, 20*time.Millisecond, "dump file should appear")
}

func TestClose_StopsDumpLoop(t *testing.T) {
	dbm := database.NewManager(zerolog.New(io.Discard))
	db, err := dbm.GetSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	b := New(Config{
		DumpInterval: 10 * time.Millisecond,
		DumpPath:     filepath.Join(t.TempDir(), "dump.db"),
	}, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, b.Init())

	assert.NoError(t, b.Close())
}
