package validation

import (
	"testing"

	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLeaderRefs_DuplicateID(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	dup := validLeader()
	dup.Name = "Gen. Keller"
	dup.IsAssigned = false
	dup.UnitID = ""
	ds.AddLeader(dup)

	res := v.ValidateLeaderRefs(validLeader(), ds)

	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "duplicate leader ID")
	assert.Contains(t, res.Errors[0], "USA_LDR_1")
}

func TestValidateLeaderRefs_SharedNameWarns(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	twin := core.Leader{
		LeaderID:      "USA_LDR_2",
		Name:          "col. hargrove", // case-insensitive match
		Side:          core.SideFriendly,
		Nationality:   core.NationalityUSA,
		CommandGrade:  core.CommandGradeJunior,
		CombatCommand: core.CombatCommandGround,
	}
	ds.AddLeader(twin)

	res := v.ValidateLeaderRefs(validLeader(), ds)

	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "shares the name")
	assert.Contains(t, res.Warnings[0], "USA_LDR_2")
}

func TestValidateLeaderRefs_Assignment(t *testing.T) {
	v := newTestValidator()

	t.Run("missing unit", func(t *testing.T) {
		ds := store.New()
		l := validLeader()
		ds.AddLeader(l)

		res := v.ValidateLeaderRefs(l, ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "does not exist")
		assert.Contains(t, res.Errors[0], l.UnitID)
	})

	t.Run("unit has no commanding officer", func(t *testing.T) {
		ds := newTestDataset()
		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)
		ds.RemoveCombatUnit(unit.UnitID)
		unit.CommandingOfficer = nil
		ds.AddCombatUnit(unit)

		res := v.ValidateLeaderRefs(validLeader(), ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "not bidirectional")
	})

	t.Run("unit reports a different officer", func(t *testing.T) {
		ds := newTestDataset()
		other := validLeader()
		other.LeaderID = "USA_LDR_9"
		other.Name = "Maj. Voss"

		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)
		ds.RemoveCombatUnit(unit.UnitID)
		unit.CommandingOfficer = &other
		ds.AddCombatUnit(unit)

		res := v.ValidateLeaderRefs(validLeader(), ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "not bidirectional")
		assert.Contains(t, res.Errors[0], "USA_LDR_9")
	})

	t.Run("consistent assignment is clean", func(t *testing.T) {
		ds := newTestDataset()
		res := v.ValidateLeaderRefs(validLeader(), ds)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})
}

func TestValidateWeaponProfileRefs(t *testing.T) {
	v := newTestValidator()

	t.Run("duplicate ID", func(t *testing.T) {
		ds := newTestDataset()
		dup := validWeaponProfile()
		dup.Name = "M1A1 Abrams"
		ds.AddWeaponProfile(dup)

		res := v.ValidateWeaponProfileRefs(validWeaponProfile(), ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "duplicate weapon system profile ID")
		assert.Contains(t, res.Errors[0], "USA_TANK_M1")
	})

	t.Run("naming convention", func(t *testing.T) {
		ds := newTestDataset()
		p := validWeaponProfile()
		p.WeaponSystemID = "USA_M1" // no category name

		res := v.ValidateWeaponProfileRefs(p, ds)

		assert.Empty(t, res.Errors)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "naming convention")
		assert.Contains(t, res.Warnings[0], "TANK")
	})

	t.Run("conforming ID is clean", func(t *testing.T) {
		ds := newTestDataset()
		res := v.ValidateWeaponProfileRefs(validWeaponProfile(), ds)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})
}

func TestValidateUnitProfileRefs_DuplicateID(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	dup := validUnitProfile()
	dup.Name = "Armor Battalion (copy)"
	ds.AddUnitProfile(dup)

	res := v.ValidateUnitProfileRefs(validUnitProfile(), ds)

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "duplicate unit profile ID")
}

func TestValidateCombatUnitRefs(t *testing.T) {
	v := newTestValidator()

	t.Run("consistent unit is clean", func(t *testing.T) {
		ds := newTestDataset()
		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)

		res := v.ValidateCombatUnitRefs(unit, ds)

		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("orphaned commanding officer", func(t *testing.T) {
		ds := newTestDataset()
		ds.RemoveLeader("USA_LDR_1")
		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)

		res := v.ValidateCombatUnitRefs(unit, ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "does not exist in the leader roster")
	})

	t.Run("leader points elsewhere", func(t *testing.T) {
		ds := newTestDataset()
		leader, ok := ds.LeaderByID("USA_LDR_1")
		require.True(t, ok)
		ds.RemoveLeader(leader.LeaderID)
		leader.UnitID = "USA_UNIT_9"
		ds.AddLeader(leader)

		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)

		res := v.ValidateCombatUnitRefs(unit, ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "not bidirectional")
		assert.Contains(t, res.Errors[0], "USA_UNIT_9")
	})

	t.Run("nationality mismatch on deployed profile", func(t *testing.T) {
		ds := newTestDataset()
		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)

		foreign := *unit.DeployedProfile
		foreign.Nationality = core.NationalityUSSR
		unit.DeployedProfile = &foreign

		res := v.ValidateCombatUnitRefs(unit, ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "nationality USSR does not match unit nationality USA")
	})

	t.Run("nationality mismatch on unit profile", func(t *testing.T) {
		ds := newTestDataset()
		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)

		foreign := *unit.UnitProfile
		foreign.Nationality = core.NationalityDDR
		unit.UnitProfile = &foreign

		res := v.ValidateCombatUnitRefs(unit, ds)

		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "unit profile")
	})

	t.Run("profile missing from roster warns", func(t *testing.T) {
		ds := newTestDataset()
		unit, ok := ds.CombatUnitByID("USA_UNIT_1")
		require.True(t, ok)

		stray := validWeaponProfile()
		stray.WeaponSystemID = "USA_TANK_M60"
		unit.DeployedProfile = &stray

		res := v.ValidateCombatUnitRefs(unit, ds)

		assert.Empty(t, res.Errors)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "not in the weapon system roster")
	})
}
