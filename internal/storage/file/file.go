// Package file implements the storage.Backend interface on JSON snapshot
// files. Each scenario is one document under the configured output
// directory, optionally gzip-compressed.
package file

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scenforge/unitcreator/internal/config"
	"github.com/scenforge/unitcreator/internal/model"
	"github.com/scenforge/unitcreator/internal/model/convert"
	"github.com/scenforge/unitcreator/internal/store"
)

const (
	snapshotSuffix     = ".scenario.json"
	snapshotSuffixGzip = ".scenario.json.gz"
)

// ErrScenarioNotFound is returned when no snapshot exists for the name.
var ErrScenarioNotFound = errors.New("scenario not found")

// Backend stores scenarios as JSON snapshot files.
type Backend struct {
	cfg config.FileConfig
	log *slog.Logger
}

// New creates a new file storage backend.
func New(cfg config.FileConfig, log *slog.Logger) *Backend {
	if log == nil {
		log = slog.Default()
	}
	return &Backend{cfg: cfg, log: log}
}

// Init ensures the output directory exists.
func (b *Backend) Init() error {
	if b.cfg.OutputDir == "" {
		return fmt.Errorf("no output directory configured")
	}
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Close is a no-op; snapshots are written synchronously on save.
func (b *Backend) Close() error {
	return nil
}

// SaveScenario writes the store as a JSON snapshot, replacing any snapshot
// with the same name. Compressed and uncompressed variants of the same
// scenario never coexist.
func (b *Backend) SaveScenario(st *store.Store) error {
	scenario := convert.ScenarioFromStore(st)
	if scenario.Name == "" {
		return fmt.Errorf("scenario has no name")
	}

	base := sanitizeName(scenario.Name)
	plainPath := filepath.Join(b.cfg.OutputDir, base+snapshotSuffix)
	gzipPath := filepath.Join(b.cfg.OutputDir, base+snapshotSuffixGzip)

	path := plainPath
	stale := gzipPath
	if b.cfg.CompressOutput {
		path, stale = gzipPath, plainPath
	}

	if err := b.writeSnapshot(path, scenario); err != nil {
		return err
	}
	if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale snapshot: %w", err)
	}

	b.log.Debug("Saved scenario snapshot",
		"name", scenario.Name,
		"path", path,
		"leaders", len(scenario.Leaders),
		"weaponProfiles", len(scenario.WeaponProfiles),
		"unitProfiles", len(scenario.UnitProfiles),
		"combatUnits", len(scenario.CombatUnits))
	return nil
}

func (b *Backend) writeSnapshot(path string, scenario model.Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := json.NewEncoder(w).Encode(scenario); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("finalizing compressed snapshot: %w", err)
		}
	}
	return f.Close()
}

// LoadScenario reads the named snapshot into a fresh store. Both the
// compressed and uncompressed variants are tried.
func (b *Backend) LoadScenario(name string) (*store.Store, error) {
	base := sanitizeName(name)
	for _, suffix := range []string{snapshotSuffixGzip, snapshotSuffix} {
		path := filepath.Join(b.cfg.OutputDir, base+suffix)
		scenario, err := readSnapshot(path)
		if err == nil {
			return convert.StoreFromScenario(scenario), nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading snapshot '%s': %w", path, err)
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrScenarioNotFound, name)
}

func readSnapshot(path string) (model.Scenario, error) {
	var scenario model.Scenario

	f, err := os.Open(path)
	if err != nil {
		return scenario, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return scenario, fmt.Errorf("opening compressed snapshot: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	if err := json.NewDecoder(r).Decode(&scenario); err != nil {
		return scenario, fmt.Errorf("decoding snapshot: %w", err)
	}
	return scenario, nil
}

// ListScenarios returns the names of all stored scenarios, sorted. Names
// come from the snapshot documents, not the filenames, since filenames are
// sanitized.
func (b *Backend) ListScenarios() ([]string, error) {
	entries, err := os.ReadDir(b.cfg.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), snapshotSuffix) &&
			!strings.HasSuffix(entry.Name(), snapshotSuffixGzip) {
			continue
		}
		scenario, err := readSnapshot(filepath.Join(b.cfg.OutputDir, entry.Name()))
		if err != nil {
			b.log.Warn("Skipping unreadable snapshot", "file", entry.Name(), "error", err)
			continue
		}
		names = append(names, scenario.Name)
	}

	sort.Strings(names)
	return names, nil
}

// sanitizeName makes a scenario name safe for use as a filename.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ":", "_")
	name = strings.ReplaceAll(name, "/", "_")
	if name == "" {
		name = "scenario"
	}
	return name
}
