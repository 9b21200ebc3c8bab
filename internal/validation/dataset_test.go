package validation

import (
	"strings"
	"testing"

	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAll_ConsistentDataset(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	res := v.ValidateAll(ds)

	assert.True(t, res.IsValid(), "errors: %v", res.Errors)
	assert.Empty(t, res.Warnings, "warnings: %v", res.Warnings)
}

func TestValidateAll_EmptyDatasetWarnsPerCollection(t *testing.T) {
	v := newTestValidator()

	res := v.ValidateAll(store.New())

	assert.True(t, res.IsValid())
	assert.Len(t, res.Warnings, 4)
}

func TestValidateAll_DuplicateLeaderID(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	dup := validLeader()
	dup.Name = "Gen. Keller"
	dup.IsAssigned = false
	dup.UnitID = ""
	ds.AddLeader(dup)

	res := v.ValidateAll(ds)

	assert.False(t, res.IsValid())
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "duplicate leader ID") && strings.Contains(e, "USA_LDR_1") {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate ID error naming USA_LDR_1, got %v", res.Errors)
}

func TestValidateAll_IsIdempotent(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	// Seed some findings so order stability is observable.
	broken := validLeader()
	broken.LeaderID = "USA_LDR_2"
	broken.Name = "X"
	broken.IsAssigned = false
	broken.UnitID = ""
	ds.AddLeader(broken)

	first := v.ValidateAll(ds)
	second := v.ValidateAll(ds)

	assert.Equal(t, first.Errors, second.Errors)
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestValidateAll_ExportReadiness(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	bare := validCombatUnit(nil, nil, nil)
	bare.UnitID = "USA_UNIT_2"
	bare.UnitName = "2-64 Armor"
	bare.DeployedProfile = nil
	bare.UnitProfile = nil
	ds.AddCombatUnit(bare)

	res := v.ValidateAll(ds)

	assert.False(t, res.IsValid())
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "1 combat unit(s) are missing required profiles") {
			found = true
		}
	}
	assert.True(t, found, "expected an export readiness error, got %v", res.Errors)
}

func TestValidateAll_MissingUnitProfileBlocksExport(t *testing.T) {
	v := newTestValidator()
	ds := newTestDataset()

	wp := validWeaponProfile()
	bare := validCombatUnit(&wp, nil, nil)
	bare.UnitID = "USA_UNIT_2"
	bare.UnitName = "2-64 Armor"
	ds.AddCombatUnit(bare)

	res := v.ValidateAll(ds)

	assert.False(t, res.IsValid())
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "1 combat unit(s) are missing required profiles") {
			found = true
		}
	}
	assert.True(t, found, "expected an export readiness error, got %v", res.Errors)
}

func TestValidateAll_UnitsWithoutProfileCollections(t *testing.T) {
	v := newTestValidator()

	ds := store.New()
	wp := validWeaponProfile()
	up := validUnitProfile()
	ds.AddCombatUnit(validCombatUnit(&wp, &up, nil))

	res := v.ValidateAll(ds)

	assert.False(t, res.IsValid())
	joined := strings.Join(res.Errors, "\n")
	assert.Contains(t, joined, "no weapon system profiles are defined")
	assert.Contains(t, joined, "no unit profiles are defined")
}

func TestValidateAll_FailFastStopsEarly(t *testing.T) {
	ds := store.New()

	bad1 := validLeader()
	bad1.LeaderID = "A_LDR"
	bad1.Name = "X" // too short
	bad1.IsAssigned = false
	bad1.UnitID = ""
	ds.AddLeader(bad1)

	bad2 := validLeader()
	bad2.LeaderID = "B_LDR"
	bad2.Name = "Y" // also too short
	bad2.IsAssigned = false
	bad2.UnitID = ""
	ds.AddLeader(bad2)

	full := newTestValidator().ValidateAll(ds)
	fast := newTestValidator(WithFailFast()).ValidateAll(ds)

	assert.Len(t, full.Errors, 2)
	assert.Len(t, fast.Errors, 1)
	assert.Contains(t, fast.Errors[0], "A_LDR")
}

// panickyDataset blows up during enumeration to exercise the fault boundary.
type panickyDataset struct{}

func (panickyDataset) Leaders() []core.Leader                        { panic("corrupted collection") }
func (panickyDataset) WeaponProfiles() []core.WeaponSystemProfile    { return nil }
func (panickyDataset) UnitProfiles() []core.UnitProfile              { return nil }
func (panickyDataset) CombatUnits() []core.CombatUnit                { return nil }
func (panickyDataset) LeaderByID(string) (core.Leader, bool)         { return core.Leader{}, false }
func (panickyDataset) WeaponProfileByID(string) (core.WeaponSystemProfile, bool) {
	return core.WeaponSystemProfile{}, false
}
func (panickyDataset) UnitProfileByID(string) (core.UnitProfile, bool) {
	return core.UnitProfile{}, false
}
func (panickyDataset) CombatUnitByID(string) (core.CombatUnit, bool) {
	return core.CombatUnit{}, false
}

func TestValidateAll_RecoversPanics(t *testing.T) {
	v := newTestValidator()

	var res *Result
	require.NotPanics(t, func() {
		res = v.ValidateAll(panickyDataset{})
	})

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "internal validation fault")
	assert.Contains(t, res.Errors[0], "corrupted collection")
	assert.False(t, res.IsValid())
}
