package validation

import (
	"io"
	"log/slog"

	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
)

func newTestValidator(opts ...Option) *Validator {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
}

func validWeaponProfile() core.WeaponSystemProfile {
	return core.WeaponSystemProfile{
		WeaponSystemID:   "USA_TANK_M1",
		Name:             "M1 Abrams",
		Nationality:      core.NationalityUSA,
		WeaponSystem:     core.WeaponSystemTank,
		PrimaryRange:     3,
		IndirectRange:    0,
		SpottingRange:    4,
		MovementModifier: 1.2,
		LandHardAttack:   20,
		LandHardDefense:  18,
		LandSoftAttack:   14,
		LandSoftDefense:  16,
		LandAirAttack:    2,
		LandAirDefense:   6,
	}
}

func validUnitProfile() core.UnitProfile {
	return core.UnitProfile{
		UnitProfileID: "USA_ARMOR_BN",
		Name:          "Armor Battalion",
		Nationality:   core.NationalityUSA,
		Equipment: map[core.WeaponSystem]int{
			core.WeaponSystemTank: 54,
			core.WeaponSystemAPC:  12,
		},
	}
}

func validLeader() core.Leader {
	return core.Leader{
		LeaderID:         "USA_LDR_1",
		Name:             "Col. Hargrove",
		Side:             core.SideFriendly,
		Nationality:      core.NationalityUSA,
		CommandGrade:     core.CommandGradeSenior,
		CombatCommand:    core.CombatCommandGround,
		ReputationPoints: 250,
		IsAssigned:       true,
		UnitID:           "USA_UNIT_1",
	}
}

func validCombatUnit(wp *core.WeaponSystemProfile, up *core.UnitProfile, leader *core.Leader) core.CombatUnit {
	return core.CombatUnit{
		UnitID:            "USA_UNIT_1",
		UnitName:          "1-64 Armor",
		UnitType:          core.UnitTypeArmored,
		Classification:    core.ClassificationRegular,
		Role:              core.UnitRoleAssault,
		Side:              core.SideFriendly,
		Nationality:       core.NationalityUSA,
		Experience:        core.ExperienceTrained,
		Efficiency:        core.EfficiencyOperational,
		CombatState:       core.CombatStateDeployed,
		DeployedProfile:   wp,
		UnitProfile:       up,
		CommandingOfficer: leader,
		HitPoints:         core.StatPair{Current: 10, Max: 10},
		DaysSupply:        core.StatPair{Current: 3, Max: 5},
		Position:          core.GridPosition{X: 12.5, Y: 40.25},
	}
}

// newTestDataset builds a fully consistent one-of-each scenario that passes
// ValidateAll with no errors and no warnings.
func newTestDataset() *store.Store {
	s := store.New()

	wp := validWeaponProfile()
	up := validUnitProfile()
	leader := validLeader()
	unit := validCombatUnit(&wp, &up, &leader)

	s.AddWeaponProfile(wp)
	s.AddUnitProfile(up)
	s.AddLeader(leader)
	s.AddCombatUnit(unit)

	return s
}
