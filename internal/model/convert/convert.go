// Package convert provides functions to convert GORM models to core models
// and back. Enum strings that fail to parse become the zero variant; the
// validation package reports those as invalid rather than conversion failing.
package convert

import (
	"encoding/json"

	"github.com/scenforge/unitcreator/internal/model"
	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
)

func sideFromString(s string) core.Side {
	v, _ := core.ParseSide(s)
	return v
}

func nationalityFromString(s string) core.Nationality {
	v, _ := core.ParseNationality(s)
	return v
}

// ScenarioToCore converts a GORM Scenario to core scenario metadata.
func ScenarioToCore(s model.Scenario) core.Scenario {
	return core.Scenario{
		ID:              s.ID,
		Name:            s.Name,
		Author:          s.Author,
		Theater:         s.Theater,
		StartTime:       s.StartTime,
		OriginLatitude:  s.OriginLatitude,
		OriginLongitude: s.OriginLongitude,
		CreatorVersion:  s.CreatorVersion,
	}
}

// LeaderToCore converts a GORM Leader to a core.Leader.
func LeaderToCore(l model.Leader) core.Leader {
	grade, _ := core.ParseCommandGrade(l.CommandGrade)
	command, _ := core.ParseCombatCommand(l.CombatCommand)

	return core.Leader{
		LeaderID:         l.LeaderID,
		Name:             l.Name,
		Side:             sideFromString(l.Side),
		Nationality:      nationalityFromString(l.Nationality),
		CommandGrade:     grade,
		CombatCommand:    command,
		ReputationPoints: l.ReputationPoints,
		IsAssigned:       l.IsAssigned,
		UnitID:           l.UnitID,
	}
}

// WeaponProfileToCore converts a GORM WeaponProfile to a
// core.WeaponSystemProfile.
func WeaponProfileToCore(p model.WeaponProfile) core.WeaponSystemProfile {
	system, _ := core.ParseWeaponSystem(p.WeaponSystem)

	return core.WeaponSystemProfile{
		WeaponSystemID:   p.WeaponSystemID,
		Name:             p.Name,
		Nationality:      nationalityFromString(p.Nationality),
		WeaponSystem:     system,
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

// UnitProfileToCore converts a GORM UnitProfile to a core.UnitProfile.
// The equipment JSON object maps category names to quantities; entries with
// unknown category names are dropped.
func UnitProfileToCore(p model.UnitProfile) core.UnitProfile {
	equipment := make(map[core.WeaponSystem]int)
	if len(p.Equipment) > 0 {
		var raw map[string]int
		if err := json.Unmarshal(p.Equipment, &raw); err == nil {
			for name, qty := range raw {
				system, err := core.ParseWeaponSystem(name)
				if err != nil {
					continue
				}
				equipment[system] = qty
			}
		}
	}

	return core.UnitProfile{
		UnitProfileID: p.UnitProfileID,
		Name:          p.Name,
		Nationality:   nationalityFromString(p.Nationality),
		Equipment:     equipment,
	}
}

// CombatUnitToCore converts a GORM CombatUnit to a core.CombatUnit,
// resolving its reference identities against the already-converted rosters.
// Unresolvable references stay nil and surface during validation.
func CombatUnitToCore(
	u model.CombatUnit,
	weaponProfiles map[string]*core.WeaponSystemProfile,
	unitProfiles map[string]*core.UnitProfile,
	leaders map[string]*core.Leader,
) core.CombatUnit {
	unitType, _ := core.ParseUnitType(u.UnitType)
	classification, _ := core.ParseClassification(u.Classification)
	role, _ := core.ParseUnitRole(u.Role)
	experience, _ := core.ParseExperienceLevel(u.Experience)
	efficiency, _ := core.ParseEfficiencyLevel(u.Efficiency)
	combatState, _ := core.ParseCombatState(u.CombatState)

	out := core.CombatUnit{
		UnitID:         u.UnitID,
		UnitName:       u.UnitName,
		UnitType:       unitType,
		Classification: classification,
		Role:           role,
		Side:           sideFromString(u.Side),
		Nationality:    nationalityFromString(u.Nationality),
		Experience:     experience,
		Efficiency:     efficiency,
		CombatState:    combatState,
		IsMounted:      u.IsMounted,
		HitPoints:      core.StatPair{Current: u.HitPoints, Max: u.HitPointsMax},
		DaysSupply:     core.StatPair{Current: u.DaysSupply, Max: u.DaysSupplyMax},
		Position:       core.GridPosition{X: u.PositionX, Y: u.PositionY},
	}

	if u.DeployedProfileID != "" {
		out.DeployedProfile = weaponProfiles[u.DeployedProfileID]
	}
	if u.MountedProfileID != "" {
		out.MountedProfile = weaponProfiles[u.MountedProfileID]
	}
	if u.UnitProfileID != "" {
		out.UnitProfile = unitProfiles[u.UnitProfileID]
	}
	if u.CommandingOfficerID != "" {
		out.CommandingOfficer = leaders[u.CommandingOfficerID]
	}

	return out
}

// StoreFromScenario converts a loaded GORM scenario graph into a populated
// in-memory store.
func StoreFromScenario(s model.Scenario) *store.Store {
	st := store.New()
	st.SetMetadata(ScenarioToCore(s))

	weaponProfiles := make(map[string]*core.WeaponSystemProfile, len(s.WeaponProfiles))
	for _, p := range s.WeaponProfiles {
		cp := WeaponProfileToCore(p)
		weaponProfiles[cp.WeaponSystemID] = &cp
		st.AddWeaponProfile(cp)
	}

	unitProfiles := make(map[string]*core.UnitProfile, len(s.UnitProfiles))
	for _, p := range s.UnitProfiles {
		cp := UnitProfileToCore(p)
		unitProfiles[cp.UnitProfileID] = &cp
		st.AddUnitProfile(cp)
	}

	leaders := make(map[string]*core.Leader, len(s.Leaders))
	for _, l := range s.Leaders {
		cl := LeaderToCore(l)
		leaders[cl.LeaderID] = &cl
		st.AddLeader(cl)
	}

	for _, u := range s.CombatUnits {
		st.AddCombatUnit(CombatUnitToCore(u, weaponProfiles, unitProfiles, leaders))
	}

	return st
}
