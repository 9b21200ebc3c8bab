package parser

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/scenforge/unitcreator/internal/model"
	"github.com/scenforge/unitcreator/internal/util"
)

// ParseUnitProfile parses unit profile data and returns a UnitProfile model.
// Fields: [unitProfileId, name, nationality, equipment]
// Equipment is a "CATEGORY:quantity;CATEGORY:quantity" list, e.g.
// "TANK:54;APC:12".
func (p *Parser) ParseUnitProfile(data []string) (model.UnitProfile, error) {
	var profile model.UnitProfile

	if len(data) < 4 {
		return profile, fmt.Errorf("unit profile record needs 4 fields, got %d", len(data))
	}

	profile.ScenarioID = p.getScenarioID()
	profile.UnitProfileID = data[0]
	profile.Name = data[1]
	profile.Nationality = data[2]

	equipment, err := util.ParsePairList(data[3])
	if err != nil {
		return profile, fmt.Errorf("error parsing equipment list: %w", err)
	}
	raw, err := json.Marshal(equipment)
	if err != nil {
		return profile, fmt.Errorf("error encoding equipment: %w", err)
	}
	profile.Equipment = datatypes.JSON(raw)

	return profile, nil
}
