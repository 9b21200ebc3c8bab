package file

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenforge/unitcreator/internal/config"
	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
)

func newTestBackend(t *testing.T, compress bool) *Backend {
	t.Helper()

	b := New(config.FileConfig{
		OutputDir:      t.TempDir(),
		CompressOutput: compress,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, b.Init())
	return b
}

func newTestStore(name string) *store.Store {
	s := store.New()
	s.SetMetadata(core.Scenario{
		Name:            name,
		Author:          "J. Keller",
		Theater:         "Central Europe",
		StartTime:       time.Date(1989, 7, 14, 4, 30, 0, 0, time.UTC),
		OriginLatitude:  50.57,
		OriginLongitude: 9.73,
		CreatorVersion:  "1.0.0",
	})
	s.AddLeader(core.Leader{
		LeaderID:      "USA_LDR_1",
		Name:          "Col. Hargrove",
		Side:          core.SideFriendly,
		Nationality:   core.NationalityUSA,
		CommandGrade:  core.CommandGradeSenior,
		CombatCommand: core.CombatCommandGround,
	})
	s.AddCombatUnit(core.CombatUnit{
		UnitID:         "USA_UNIT_1",
		UnitName:       "1-64 Armor",
		UnitType:       core.UnitTypeArmored,
		Classification: core.ClassificationRegular,
		Role:           core.UnitRoleAssault,
		Side:           core.SideFriendly,
		Nationality:    core.NationalityUSA,
		HitPoints:      core.StatPair{Current: 10, Max: 10},
		Position:       core.GridPosition{X: 12.5, Y: 40.25},
	})
	return s
}

func TestSaveAndLoadScenario(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "gzip"
		}
		t.Run(name, func(t *testing.T) {
			b := newTestBackend(t, compress)

			require.NoError(t, b.SaveScenario(newTestStore("Fulda Gap")))

			loaded, err := b.LoadScenario("Fulda Gap")
			require.NoError(t, err)

			meta := loaded.Metadata()
			assert.Equal(t, "Fulda Gap", meta.Name)
			assert.Equal(t, "J. Keller", meta.Author)
			assert.InDelta(t, 50.57, meta.OriginLatitude, 0.0001)

			require.Len(t, loaded.Leaders(), 1)
			assert.Equal(t, "Col. Hargrove", loaded.Leaders()[0].Name)

			require.Len(t, loaded.CombatUnits(), 1)
			unit := loaded.CombatUnits()[0]
			assert.Equal(t, core.UnitTypeArmored, unit.UnitType)
			assert.InDelta(t, 40.25, unit.Position.Y, 0.0001)
		})
	}
}

func TestSaveScenario_SanitizesFilename(t *testing.T) {
	b := newTestBackend(t, false)

	require.NoError(t, b.SaveScenario(newTestStore("Fulda Gap: Day 1")))

	_, err := os.Stat(filepath.Join(b.cfg.OutputDir, "Fulda_Gap__Day_1.scenario.json"))
	assert.NoError(t, err)

	loaded, err := b.LoadScenario("Fulda Gap: Day 1")
	require.NoError(t, err)
	assert.Equal(t, "Fulda Gap: Day 1", loaded.Metadata().Name)
}

func TestSaveScenario_ReplacesExisting(t *testing.T) {
	b := newTestBackend(t, false)

	require.NoError(t, b.SaveScenario(newTestStore("Fulda Gap")))

	st := newTestStore("Fulda Gap")
	st.RemoveLeader("USA_LDR_1")
	require.NoError(t, b.SaveScenario(st))

	loaded, err := b.LoadScenario("Fulda Gap")
	require.NoError(t, err)
	assert.Empty(t, loaded.Leaders())

	names, err := b.ListScenarios()
	require.NoError(t, err)
	assert.Equal(t, []string{"Fulda Gap"}, names)
}

func TestSaveScenario_CompressionChangeLeavesOneSnapshot(t *testing.T) {
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	plain := New(config.FileConfig{OutputDir: dir}, log)
	require.NoError(t, plain.Init())
	require.NoError(t, plain.SaveScenario(newTestStore("Fulda Gap")))

	compressed := New(config.FileConfig{OutputDir: dir, CompressOutput: true}, log)
	require.NoError(t, compressed.Init())
	require.NoError(t, compressed.SaveScenario(newTestStore("Fulda Gap")))

	_, err := os.Stat(filepath.Join(dir, "Fulda_Gap.scenario.json"))
	assert.True(t, os.IsNotExist(err), "plain snapshot should be removed")
	_, err = os.Stat(filepath.Join(dir, "Fulda_Gap.scenario.json.gz"))
	assert.NoError(t, err)
}

func TestSaveScenario_RequiresName(t *testing.T) {
	b := newTestBackend(t, false)
	assert.Error(t, b.SaveScenario(store.New()))
}

func TestLoadScenario_NotFound(t *testing.T) {
	b := newTestBackend(t, false)

	_, err := b.LoadScenario("absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestListScenarios_Sorted(t *testing.T) {
	b := newTestBackend(t, true)

	require.NoError(t, b.SaveScenario(newTestStore("Zulu Crossing")))
	require.NoError(t, b.SaveScenario(newTestStore("Alpha Ridge")))

	names, err := b.ListScenarios()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Ridge", "Zulu Crossing"}, names)
}

func TestListScenarios_SkipsUnrelatedFiles(t *testing.T) {
	b := newTestBackend(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(b.cfg.OutputDir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, b.SaveScenario(newTestStore("Fulda Gap")))

	names, err := b.ListScenarios()
	require.NoError(t, err)
	assert.Equal(t, []string{"Fulda Gap"}, names)
}

func TestInit_RequiresOutputDir(t *testing.T) {
	b := New(config.FileConfig{}, nil)
	assert.Error(t, b.Init())
}
