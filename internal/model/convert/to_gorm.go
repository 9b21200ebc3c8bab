// internal/model/convert/to_gorm.go
package convert

import (
	"encoding/json"

	"github.com/scenforge/unitcreator/internal/model"
	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
	"gorm.io/datatypes"
)

// ScenarioToGorm converts core scenario metadata to a GORM Scenario.
func ScenarioToGorm(s core.Scenario) model.Scenario {
	out := model.Scenario{
		Name:            s.Name,
		Author:          s.Author,
		Theater:         s.Theater,
		StartTime:       s.StartTime,
		OriginLatitude:  s.OriginLatitude,
		OriginLongitude: s.OriginLongitude,
		CreatorVersion:  s.CreatorVersion,
	}
	out.ID = s.ID
	return out
}

// LeaderToGorm converts a core.Leader to a GORM Leader.
func LeaderToGorm(l core.Leader, scenarioID uint) model.Leader {
	return model.Leader{
		ScenarioID:       scenarioID,
		LeaderID:         l.LeaderID,
		Name:             l.Name,
		Side:             l.Side.String(),
		Nationality:      l.Nationality.String(),
		CommandGrade:     l.CommandGrade.String(),
		CombatCommand:    l.CombatCommand.String(),
		ReputationPoints: l.ReputationPoints,
		IsAssigned:       l.IsAssigned,
		UnitID:           l.UnitID,
	}
}

// WeaponProfileToGorm converts a core.WeaponSystemProfile to a GORM
// WeaponProfile.
func WeaponProfileToGorm(p core.WeaponSystemProfile, scenarioID uint) model.WeaponProfile {
	return model.WeaponProfile{
		ScenarioID:       scenarioID,
		WeaponSystemID:   p.WeaponSystemID,
		Name:             p.Name,
		Nationality:      p.Nationality.String(),
		WeaponSystem:     p.WeaponSystem.String(),
		PrimaryRange:     p.PrimaryRange,
		IndirectRange:    p.IndirectRange,
		SpottingRange:    p.SpottingRange,
		MovementModifier: p.MovementModifier,
		LandHardAttack:   p.LandHardAttack,
		LandHardDefense:  p.LandHardDefense,
		LandSoftAttack:   p.LandSoftAttack,
		LandSoftDefense:  p.LandSoftDefense,
		LandAirAttack:    p.LandAirAttack,
		LandAirDefense:   p.LandAirDefense,
		AirAttack:        p.AirAttack,
		AirDefense:       p.AirDefense,
		AirGroundAttack:  p.AirGroundAttack,
		Avionics:         p.Avionics,
		StrategicAttack:  p.StrategicAttack,
	}
}

// UnitProfileToGorm converts a core.UnitProfile to a GORM UnitProfile.
func UnitProfileToGorm(p core.UnitProfile, scenarioID uint) model.UnitProfile {
	raw := make(map[string]int, len(p.Equipment))
	for system, qty := range p.Equipment {
		raw[system.String()] = qty
	}
	equipment, _ := json.Marshal(raw)

	return model.UnitProfile{
		ScenarioID:    scenarioID,
		UnitProfileID: p.UnitProfileID,
		Name:          p.Name,
		Nationality:   p.Nationality.String(),
		Equipment:     datatypes.JSON(equipment),
	}
}

// CombatUnitToGorm converts a core.CombatUnit to a GORM CombatUnit. Pointer
// references flatten to their identities.
func CombatUnitToGorm(u core.CombatUnit, scenarioID uint) model.CombatUnit {
	out := model.CombatUnit{
		ScenarioID:     scenarioID,
		UnitID:         u.UnitID,
		UnitName:       u.UnitName,
		UnitType:       u.UnitType.String(),
		Classification: u.Classification.String(),
		Role:           u.Role.String(),
		Side:           u.Side.String(),
		Nationality:    u.Nationality.String(),
		Experience:     u.Experience.String(),
		Efficiency:     u.Efficiency.String(),
		CombatState:    u.CombatState.String(),
		IsMounted:      u.IsMounted,
		HitPoints:      u.HitPoints.Current,
		HitPointsMax:   u.HitPoints.Max,
		DaysSupply:     u.DaysSupply.Current,
		DaysSupplyMax:  u.DaysSupply.Max,
		PositionX:      u.Position.X,
		PositionY:      u.Position.Y,
	}

	if u.DeployedProfile != nil {
		out.DeployedProfileID = u.DeployedProfile.WeaponSystemID
	}
	if u.MountedProfile != nil {
		out.MountedProfileID = u.MountedProfile.WeaponSystemID
	}
	if u.UnitProfile != nil {
		out.UnitProfileID = u.UnitProfile.UnitProfileID
	}
	if u.CommandingOfficer != nil {
		out.CommandingOfficerID = u.CommandingOfficer.LeaderID
	}

	return out
}

// ScenarioFromStore flattens an in-memory store into a GORM scenario graph
// ready for persistence.
func ScenarioFromStore(st *store.Store) model.Scenario {
	meta := st.Metadata()
	scenario := ScenarioToGorm(meta)

	for _, l := range st.Leaders() {
		scenario.Leaders = append(scenario.Leaders, LeaderToGorm(l, scenario.ID))
	}
	for _, p := range st.WeaponProfiles() {
		scenario.WeaponProfiles = append(scenario.WeaponProfiles, WeaponProfileToGorm(p, scenario.ID))
	}
	for _, p := range st.UnitProfiles() {
		scenario.UnitProfiles = append(scenario.UnitProfiles, UnitProfileToGorm(p, scenario.ID))
	}
	for _, u := range st.CombatUnits() {
		scenario.CombatUnits = append(scenario.CombatUnits, CombatUnitToGorm(u, scenario.ID))
	}

	return scenario
}
