package main

import (
	"fmt"
	"time"

	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
)

// runSeed builds the built-in demo scenario, validates it, and saves it to
// the storage backend.
func runSeed() error {
	st := demoScenario()
	currentScenarioName = st.Metadata().Name

	start := time.Now()
	res := validator.ValidateAll(st)
	reportResult(res)
	writeValidationPoint(st.Metadata().Name, res, time.Since(start))
	if !res.IsValid() {
		return fmt.Errorf("demo scenario failed validation with %d error(s)", len(res.Errors))
	}

	if err := storageBackend.SaveScenario(st); err != nil {
		return fmt.Errorf("saving demo scenario: %w", err)
	}
	writeScenarioSizePoint(st)

	fmt.Printf("Seeded scenario '%s'\n", st.Metadata().Name)
	return nil
}

// demoScenario returns a small, fully cross-referenced 1989 Fulda Gap
// scenario with one maneuver unit per side.
func demoScenario() *store.Store {
	st := store.New()
	st.SetMetadata(core.Scenario{
		Name:            "Fulda Gap Demo",
		Author:          "unitcreator",
		Theater:         "Central Europe",
		StartTime:       time.Date(1989, 7, 14, 4, 30, 0, 0, time.UTC),
		OriginLatitude:  50.57,
		OriginLongitude: 9.73,
		CreatorVersion:  CurrentVersion,
	})

	m1 := core.WeaponSystemProfile{
		WeaponSystemID:   "USA_TANK_M1",
		Name:             "M1 Abrams",
		Nationality:      core.NationalityUSA,
		WeaponSystem:     core.WeaponSystemTank,
		PrimaryRange:     3,
		SpottingRange:    4,
		MovementModifier: 1.2,
		LandHardAttack:   20,
		LandHardDefense:  18,
		LandSoftAttack:   14,
		LandSoftDefense:  16,
		LandAirDefense:   2,
	}
	t80 := core.WeaponSystemProfile{
		WeaponSystemID:   "USSR_TANK_T80",
		Name:             "T-80B",
		Nationality:      core.NationalityUSSR,
		WeaponSystem:     core.WeaponSystemTank,
		PrimaryRange:     3,
		SpottingRange:    3,
		MovementModifier: 1.1,
		LandHardAttack:   18,
		LandHardDefense:  16,
		LandSoftAttack:   13,
		LandSoftDefense:  14,
		LandAirDefense:   2,
	}
	st.AddWeaponProfile(m1)
	st.AddWeaponProfile(t80)

	usArmorBn := core.UnitProfile{
		UnitProfileID: "USA_ARMOR_BN",
		Name:          "Armor Battalion",
		Nationality:   core.NationalityUSA,
		Equipment: map[core.WeaponSystem]int{
			core.WeaponSystemTank: 54,
			core.WeaponSystemAPC:  12,
		},
	}
	sovTankRgt := core.UnitProfile{
		UnitProfileID: "USSR_TANK_RGT",
		Name:          "Tank Regiment",
		Nationality:   core.NationalityUSSR,
		Equipment: map[core.WeaponSystem]int{
			core.WeaponSystemTank: 94,
			core.WeaponSystemIFV:  20,
		},
	}
	st.AddUnitProfile(usArmorBn)
	st.AddUnitProfile(sovTankRgt)

	hargrove := core.Leader{
		LeaderID:         "USA_LDR_HARGROVE",
		Name:             "Col. Hargrove",
		Side:             core.SideFriendly,
		Nationality:      core.NationalityUSA,
		CommandGrade:     core.CommandGradeSenior,
		CombatCommand:    core.CombatCommandGround,
		ReputationPoints: 250,
		IsAssigned:       true,
		UnitID:           "USA_1_64_AR",
	}
	sokolov := core.Leader{
		LeaderID:         "USSR_LDR_SOKOLOV",
		Name:             "Polkovnik Sokolov",
		Side:             core.SideEnemy,
		Nationality:      core.NationalityUSSR,
		CommandGrade:     core.CommandGradeSenior,
		CombatCommand:    core.CombatCommandGround,
		ReputationPoints: 220,
		IsAssigned:       true,
		UnitID:           "USSR_79_GTR",
	}
	st.AddLeader(hargrove)
	st.AddLeader(sokolov)

	st.AddCombatUnit(core.CombatUnit{
		UnitID:            "USA_1_64_AR",
		UnitName:          "1-64 Armor",
		UnitType:          core.UnitTypeArmored,
		Classification:    core.ClassificationRegular,
		Role:              core.UnitRoleDefend,
		Side:              core.SideFriendly,
		Nationality:       core.NationalityUSA,
		Experience:        core.ExperienceTrained,
		Efficiency:        core.EfficiencyEffective,
		CombatState:       core.CombatStatePrepared,
		DeployedProfile:   &m1,
		UnitProfile:       &usArmorBn,
		CommandingOfficer: &hargrove,
		HitPoints:         core.StatPair{Current: 10, Max: 10},
		DaysSupply:        core.StatPair{Current: 4, Max: 5},
		Position:          core.GridPosition{X: 12.5, Y: 40.25},
	})
	st.AddCombatUnit(core.CombatUnit{
		UnitID:            "USSR_79_GTR",
		UnitName:          "79th Guards Tank Regiment",
		UnitType:          core.UnitTypeArmored,
		Classification:    core.ClassificationGuards,
		Role:              core.UnitRoleAssault,
		Side:              core.SideEnemy,
		Nationality:       core.NationalityUSSR,
		Experience:        core.ExperienceTrained,
		Efficiency:        core.EfficiencyOperational,
		CombatState:       core.CombatStateMoving,
		DeployedProfile:   &t80,
		UnitProfile:       &sovTankRgt,
		CommandingOfficer: &sokolov,
		HitPoints:         core.StatPair{Current: 12, Max: 12},
		DaysSupply:        core.StatPair{Current: 3, Max: 4},
		Position:          core.GridPosition{X: 58.0, Y: 44.5},
	})

	return st
}
