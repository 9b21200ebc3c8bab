// Package parser converts pipe-delimited scenario definition records into
// model structs. Records are the bulk interchange format of the scenario
// editors: one entity per line, fields separated by "|", field values
// optionally double-quoted.
package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/scenforge/unitcreator/internal/model"
)

// Record kind prefixes, the first field of every definition line.
const (
	KindScenario      = "SCENARIO"
	KindLeader        = "LEADER"
	KindWeaponProfile = "WEAPON"
	KindUnitProfile   = "UNITPROFILE"
	KindCombatUnit    = "UNIT"
)

// parseIntFromFloat parses a string that may be an integer ("32") or float
// ("32.00") into int64. Spreadsheet exports often serialize whole numbers
// as floats.
func parseIntFromFloat(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("parseIntFromFloat: %q is not a valid int64", s)
	}
	return int64(f), nil
}

// Parser provides pure []string -> model struct conversion.
// It has zero external dependencies beyond a logger.
type Parser struct {
	logger   *slog.Logger
	scenario atomic.Pointer[model.Scenario]

	// Static config set at creation time
	creatorVersion string
}

// NewParser creates a new parser with only a logger dependency
func NewParser(logger *slog.Logger, creatorVersion string) *Parser {
	return &Parser{
		logger:         logger,
		creatorVersion: creatorVersion,
	}
}

// SetScenario sets the current scenario for ScenarioID lookups
func (p *Parser) SetScenario(s *model.Scenario) {
	p.scenario.Store(s)
}

func (p *Parser) getScenarioID() uint {
	s := p.scenario.Load()
	if s == nil {
		return 0
	}
	return s.ID
}
