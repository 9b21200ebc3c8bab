package parser

import (
	"fmt"
	"strconv"

	"github.com/scenforge/unitcreator/internal/model"
)

// ParseLeader parses leader data and returns a Leader model.
// Fields: [leaderId, name, side, nationality, commandGrade, combatCommand,
// reputationPoints, isAssigned, unitId]
func (p *Parser) ParseLeader(data []string) (model.Leader, error) {
	var leader model.Leader

	if len(data) < 9 {
		return leader, fmt.Errorf("leader record needs 9 fields, got %d", len(data))
	}

	leader.ScenarioID = p.getScenarioID()
	leader.LeaderID = data[0]
	leader.Name = data[1]
	leader.Side = data[2]
	leader.Nationality = data[3]
	leader.CommandGrade = data[4]
	leader.CombatCommand = data[5]

	reputation, err := parseIntFromFloat(data[6])
	if err != nil {
		return leader, fmt.Errorf("error converting reputationPoints to int: %w", err)
	}
	leader.ReputationPoints = int(reputation)

	leader.IsAssigned, err = strconv.ParseBool(data[7])
	if err != nil {
		return leader, fmt.Errorf("error converting isAssigned to bool: %w", err)
	}
	leader.UnitID = data[8]

	return leader, nil
}
