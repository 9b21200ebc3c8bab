// Package gormstore implements the storage.Backend interface on a gorm
// database connection. It works against both Postgres and SQLite; the
// caller injects the connection.
package gormstore

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/scenforge/unitcreator/internal/model"
	"github.com/scenforge/unitcreator/internal/model/convert"
	"github.com/scenforge/unitcreator/internal/store"
)

// ErrScenarioNotFound is returned when no stored scenario has the name.
var ErrScenarioNotFound = errors.New("scenario not found")

// Dependencies holds all dependencies for the gorm storage backend.
type Dependencies struct {
	DB  *gorm.DB
	Log *slog.Logger
}

// Backend implements storage.Backend on a gorm connection.
type Backend struct {
	db  *gorm.DB
	log *slog.Logger
}

// New creates a new gorm storage backend.
func New(deps Dependencies) *Backend {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	return &Backend{
		db:  deps.DB,
		log: log,
	}
}

// Init runs schema migration.
func (b *Backend) Init() error {
	if b.db == nil {
		return fmt.Errorf("no database connection configured")
	}
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying sql connection.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}

// SaveScenario persists the store as a scenario row plus child rows,
// replacing any stored scenario with the same name.
func (b *Backend) SaveScenario(st *store.Store) error {
	scenario := convert.ScenarioFromStore(st)
	if scenario.Name == "" {
		return fmt.Errorf("scenario has no name")
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Scenario
		err := tx.Where("name = ?", scenario.Name).First(&existing).Error
		switch {
		case err == nil:
			if err := deleteScenarioRows(tx, existing.ID); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first save of this scenario
		default:
			return fmt.Errorf("looking up scenario '%s': %w", scenario.Name, err)
		}

		scenario.ID = 0
		if err := tx.Create(&scenario).Error; err != nil {
			return fmt.Errorf("saving scenario '%s': %w", scenario.Name, err)
		}

		b.log.Debug("Saved scenario",
			"name", scenario.Name,
			"leaders", len(scenario.Leaders),
			"weaponProfiles", len(scenario.WeaponProfiles),
			"unitProfiles", len(scenario.UnitProfiles),
			"combatUnits", len(scenario.CombatUnits))
		return nil
	})
}

func deleteScenarioRows(tx *gorm.DB, scenarioID uint) error {
	children := []any{
		&model.Leader{},
		&model.WeaponProfile{},
		&model.UnitProfile{},
		&model.CombatUnit{},
	}
	for _, child := range children {
		if err := tx.Where("scenario_id = ?", scenarioID).Delete(child).Error; err != nil {
			return fmt.Errorf("clearing previous scenario rows: %w", err)
		}
	}
	if err := tx.Unscoped().Delete(&model.Scenario{}, scenarioID).Error; err != nil {
		return fmt.Errorf("clearing previous scenario: %w", err)
	}
	return nil
}

// LoadScenario loads the named scenario into a fresh store.
func (b *Backend) LoadScenario(name string) (*store.Store, error) {
	var scenario model.Scenario
	err := b.db.Where("name = ?", name).First(&scenario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrScenarioNotFound, name)
		}
		return nil, fmt.Errorf("loading scenario '%s': %w", name, err)
	}

	if err := b.db.Where("scenario_id = ?", scenario.ID).Find(&scenario.Leaders).Error; err != nil {
		return nil, fmt.Errorf("loading leaders: %w", err)
	}
	if err := b.db.Where("scenario_id = ?", scenario.ID).Find(&scenario.WeaponProfiles).Error; err != nil {
		return nil, fmt.Errorf("loading weapon profiles: %w", err)
	}
	if err := b.db.Where("scenario_id = ?", scenario.ID).Find(&scenario.UnitProfiles).Error; err != nil {
		return nil, fmt.Errorf("loading unit profiles: %w", err)
	}
	if err := b.db.Where("scenario_id = ?", scenario.ID).Find(&scenario.CombatUnits).Error; err != nil {
		return nil, fmt.Errorf("loading combat units: %w", err)
	}

	return convert.StoreFromScenario(scenario), nil
}

// ListScenarios returns the names of all stored scenarios, sorted.
func (b *Backend) ListScenarios() ([]string, error) {
	names := make([]string, 0)
	err := b.db.Model(&model.Scenario{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	return names, nil
}
