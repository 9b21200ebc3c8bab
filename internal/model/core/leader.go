// internal/model/core/leader.go
package core

// Leader represents a commander that can be assigned to a combat unit.
type Leader struct {
	LeaderID         string        `json:"leaderId"`
	Name             string        `json:"name"`
	Side             Side          `json:"side"`
	Nationality      Nationality   `json:"nationality"`
	CommandGrade     CommandGrade  `json:"commandGrade"`
	CombatCommand    CombatCommand `json:"combatCommand"`
	ReputationPoints int           `json:"reputationPoints"`

	// IsAssigned and UnitID must agree with the referenced unit's
	// CommandingOfficer; the validation package enforces this both ways.
	IsAssigned bool   `json:"isAssigned"`
	UnitID     string `json:"unitId"`
}
