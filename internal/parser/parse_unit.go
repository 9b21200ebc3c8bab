package parser

import (
	"fmt"
	"strconv"

	"github.com/scenforge/unitcreator/internal/model"
)

// ParseCombatUnit parses combat unit data and returns a CombatUnit model.
// Fields: [unitId, unitName, unitType, classification, role, side,
// nationality, experience, efficiency, combatState, isMounted,
// deployedProfileId, mountedProfileId, unitProfileId, leaderId, hp, hpMax,
// supply, supplyMax, posX, posY]
// Reference fields may be empty strings for units with no reference.
func (p *Parser) ParseCombatUnit(data []string) (model.CombatUnit, error) {
	var unit model.CombatUnit

	if len(data) < 21 {
		return unit, fmt.Errorf("combat unit record needs 21 fields, got %d", len(data))
	}

	unit.ScenarioID = p.getScenarioID()
	unit.UnitID = data[0]
	unit.UnitName = data[1]
	unit.UnitType = data[2]
	unit.Classification = data[3]
	unit.Role = data[4]
	unit.Side = data[5]
	unit.Nationality = data[6]
	unit.Experience = data[7]
	unit.Efficiency = data[8]
	unit.CombatState = data[9]

	var err error
	unit.IsMounted, err = strconv.ParseBool(data[10])
	if err != nil {
		return unit, fmt.Errorf("error converting isMounted to bool: %w", err)
	}

	unit.DeployedProfileID = data[11]
	unit.MountedProfileID = data[12]
	unit.UnitProfileID = data[13]
	unit.CommandingOfficerID = data[14]

	stats := []struct {
		name string
		dst  *int
		raw  string
	}{
		{"hitPoints", &unit.HitPoints, data[15]},
		{"hitPointsMax", &unit.HitPointsMax, data[16]},
		{"daysSupply", &unit.DaysSupply, data[17]},
		{"daysSupplyMax", &unit.DaysSupplyMax, data[18]},
	}
	for _, s := range stats {
		v, err := parseIntFromFloat(s.raw)
		if err != nil {
			return unit, fmt.Errorf("error converting %s to int: %w", s.name, err)
		}
		*s.dst = int(v)
	}

	unit.PositionX, err = strconv.ParseFloat(data[19], 64)
	if err != nil {
		return unit, fmt.Errorf("error parsing position X: %w", err)
	}
	unit.PositionY, err = strconv.ParseFloat(data[20], 64)
	if err != nil {
		return unit, fmt.Errorf("error parsing position Y: %w", err)
	}

	return unit, nil
}
