// Package export writes validated scenarios to disk as JSON documents the
// web viewer and wargame engine consume. Export is gated on validation:
// a scenario with any validation error is never written.
package export

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/scenforge/unitcreator/internal/config"
	v1 "github.com/scenforge/unitcreator/internal/export/v1"
	"github.com/scenforge/unitcreator/internal/store"
	"github.com/scenforge/unitcreator/internal/validation"
)

// ErrValidationFailed is returned when the scenario has validation errors.
var ErrValidationFailed = errors.New("scenario failed validation")

// Exporter validates a scenario store and writes the v1 export document.
type Exporter struct {
	log       *slog.Logger
	cfg       config.ExportConfig
	validator *validation.Validator
}

// New creates an exporter. A nil logger falls back to slog.Default().
func New(log *slog.Logger, cfg config.ExportConfig, validator *validation.Validator) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{
		log:       log,
		cfg:       cfg,
		validator: validator,
	}
}

// Export validates the store and writes the scenario to the configured
// output directory. Validation errors block the export; warnings are logged
// and the export proceeds. Returns the path of the written file.
func (e *Exporter) Export(st *store.Store) (string, error) {
	result := e.validator.ValidateAll(st)
	if !result.IsValid() {
		for _, msg := range result.Errors {
			e.log.Error("validation error", "message", msg)
		}
		return "", fmt.Errorf("%w: %d error(s)", ErrValidationFailed, len(result.Errors))
	}
	if result.HasWarnings() {
		for _, msg := range result.Warnings {
			e.log.Warn("validation warning", "message", msg)
		}
	}

	export, err := v1.Build(st)
	if err != nil {
		return "", fmt.Errorf("building export document: %w", err)
	}

	outputPath := filepath.Join(e.cfg.OutputDir, e.filename(st))

	if err := os.MkdirAll(e.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if e.cfg.CompressOutput {
		err = writeGzipJSON(outputPath, export)
	} else {
		err = writeJSON(outputPath, export)
	}
	if err != nil {
		return "", err
	}

	e.log.Info("Exported scenario",
		"path", outputPath,
		"leaders", len(export.Leaders),
		"weaponProfiles", len(export.WeaponProfiles),
		"unitProfiles", len(export.UnitProfiles),
		"combatUnits", len(export.CombatUnits),
		"warnings", len(result.Warnings))

	return outputPath, nil
}

func (e *Exporter) filename(st *store.Store) string {
	meta := st.Metadata()
	name := strings.ReplaceAll(meta.Name, " ", "_")
	name = strings.ReplaceAll(name, ":", "_")
	if name == "" {
		name = "scenario"
	}
	timestamp := meta.StartTime.Format("20060102_150405")

	if e.cfg.CompressOutput {
		return fmt.Sprintf("%s_%s.json.gz", name, timestamp)
	}
	return fmt.Sprintf("%s_%s.json", name, timestamp)
}

func writeJSON(path string, data v1.Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	return encoder.Encode(data)
}

func writeGzipJSON(path string, data v1.Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	defer gzWriter.Close()

	encoder := json.NewEncoder(gzWriter)
	return encoder.Encode(data)
}
