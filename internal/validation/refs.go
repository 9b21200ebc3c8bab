// internal/validation/refs.go
package validation

import (
	"fmt"
	"strings"

	"github.com/scenforge/unitcreator/internal/model/core"
)

// ValidateLeaderRefs checks a leader against the rest of the dataset:
// identity uniqueness, name similarity, and assignment bidirectionality.
func (v *Validator) ValidateLeaderRefs(l core.Leader, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateLeaderRefs")

	count := 0
	for _, other := range ds.Leaders() {
		if other.LeaderID == l.LeaderID {
			count++
			continue
		}
		if l.Name != "" && strings.EqualFold(other.Name, l.Name) {
			res.AddWarning(fmt.Sprintf("leader '%s': shares the name '%s' with leader '%s'",
				l.LeaderID, l.Name, other.LeaderID))
		}
	}
	if count > 1 {
		res.AddError(fmt.Sprintf("duplicate leader ID '%s'", l.LeaderID))
	}

	if l.IsAssigned && l.UnitID != "" {
		unit, ok := ds.CombatUnitByID(l.UnitID)
		switch {
		case !ok:
			res.AddError(fmt.Sprintf("leader '%s': assigned to unit '%s' which does not exist",
				l.LeaderID, l.UnitID))
		case unit.CommandingOfficer == nil:
			res.AddError(fmt.Sprintf("leader '%s': assignment to unit '%s' is not bidirectional: the unit has no commanding officer",
				l.LeaderID, l.UnitID))
		case unit.CommandingOfficer.LeaderID != l.LeaderID:
			res.AddError(fmt.Sprintf("leader '%s': assignment to unit '%s' is not bidirectional: the unit reports commanding officer '%s'",
				l.LeaderID, l.UnitID, unit.CommandingOfficer.LeaderID))
		}
	}

	return res
}

// ValidateWeaponProfileRefs checks a weapon system profile against the
// dataset: identity uniqueness and the identifier naming convention.
func (v *Validator) ValidateWeaponProfileRefs(p core.WeaponSystemProfile, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateWeaponProfileRefs")

	count := 0
	for _, other := range ds.WeaponProfiles() {
		if other.WeaponSystemID == p.WeaponSystemID {
			count++
		}
	}
	if count > 1 {
		res.AddError(fmt.Sprintf("duplicate weapon system profile ID '%s'", p.WeaponSystemID))
	}

	if p.WeaponSystem.Valid() &&
		!strings.Contains(strings.ToUpper(p.WeaponSystemID), p.WeaponSystem.String()) {
		res.AddWarning(fmt.Sprintf("weapon system profile '%s': identifier does not contain its category name '%s'",
			p.WeaponSystemID, p.WeaponSystem))
	}

	return res
}

// ValidateUnitProfileRefs checks a unit profile against the dataset.
func (v *Validator) ValidateUnitProfileRefs(p core.UnitProfile, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateUnitProfileRefs")

	count := 0
	for _, other := range ds.UnitProfiles() {
		if other.UnitProfileID == p.UnitProfileID {
			count++
		}
	}
	if count > 1 {
		res.AddError(fmt.Sprintf("duplicate unit profile ID '%s'", p.UnitProfileID))
	}

	return res
}

// ValidateCombatUnitRefs checks a combat unit against the dataset: identity
// uniqueness, leader assignment consistency, orphaned profile references,
// and nationality propagation onto referenced profiles.
func (v *Validator) ValidateCombatUnitRefs(u core.CombatUnit, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateCombatUnitRefs")

	count := 0
	for _, other := range ds.CombatUnits() {
		if other.UnitID == u.UnitID {
			count++
		}
	}
	if count > 1 {
		res.AddError(fmt.Sprintf("duplicate combat unit ID '%s'", u.UnitID))
	}

	if u.CommandingOfficer != nil {
		leader, ok := ds.LeaderByID(u.CommandingOfficer.LeaderID)
		switch {
		case !ok:
			res.AddError(fmt.Sprintf("combat unit '%s': commanding officer '%s' does not exist in the leader roster",
				u.UnitID, u.CommandingOfficer.LeaderID))
		case !leader.IsAssigned || leader.UnitID != u.UnitID:
			res.AddError(fmt.Sprintf("combat unit '%s': command by leader '%s' is not bidirectional: the leader reports unit '%s'",
				u.UnitID, leader.LeaderID, leader.UnitID))
		}
	}

	v.checkProfileRef(res, u, "deployed profile", profileRef(u.DeployedProfile), ds)
	v.checkProfileRef(res, u, "mounted profile", profileRef(u.MountedProfile), ds)

	if u.UnitProfile != nil {
		if _, ok := ds.UnitProfileByID(u.UnitProfile.UnitProfileID); !ok {
			res.AddWarning(fmt.Sprintf("combat unit '%s': unit profile '%s' is not in the unit profile roster",
				u.UnitID, u.UnitProfile.UnitProfileID))
		}
		if u.UnitProfile.Nationality != u.Nationality {
			res.AddError(fmt.Sprintf("combat unit '%s': unit profile '%s' nationality %s does not match unit nationality %s",
				u.UnitID, u.UnitProfile.UnitProfileID, u.UnitProfile.Nationality, u.Nationality))
		}
	}

	return res
}

type profileRefInfo struct {
	id          string
	nationality core.Nationality
	present     bool
}

func profileRef(p *core.WeaponSystemProfile) profileRefInfo {
	if p == nil {
		return profileRefInfo{}
	}
	return profileRefInfo{id: p.WeaponSystemID, nationality: p.Nationality, present: true}
}

func (v *Validator) checkProfileRef(res *Result, u core.CombatUnit, label string, ref profileRefInfo, ds Dataset) {
	if !ref.present {
		return
	}
	if _, ok := ds.WeaponProfileByID(ref.id); !ok {
		res.AddWarning(fmt.Sprintf("combat unit '%s': %s '%s' is not in the weapon system roster",
			u.UnitID, label, ref.id))
	}
	if ref.nationality != u.Nationality {
		res.AddError(fmt.Sprintf("combat unit '%s': %s '%s' nationality %s does not match unit nationality %s",
			u.UnitID, label, ref.id, ref.nationality, u.Nationality))
	}
}

// ValidateLeader runs field and cross-reference checks for one leader.
func (v *Validator) ValidateLeader(l core.Leader, ds Dataset) *Result {
	res := v.ValidateLeaderFields(l)
	res.Merge(v.ValidateLeaderRefs(l, ds))
	return res
}

// ValidateWeaponProfile runs field and cross-reference checks for one
// weapon system profile.
func (v *Validator) ValidateWeaponProfile(p core.WeaponSystemProfile, ds Dataset) *Result {
	res := v.ValidateWeaponProfileFields(p)
	res.Merge(v.ValidateWeaponProfileRefs(p, ds))
	return res
}

// ValidateUnitProfile runs field and cross-reference checks for one unit
// profile.
func (v *Validator) ValidateUnitProfile(p core.UnitProfile, ds Dataset) *Result {
	res := v.ValidateUnitProfileFields(p)
	res.Merge(v.ValidateUnitProfileRefs(p, ds))
	return res
}

// ValidateCombatUnit runs field and cross-reference checks for one combat
// unit.
func (v *Validator) ValidateCombatUnit(u core.CombatUnit, ds Dataset) *Result {
	res := v.ValidateCombatUnitFields(u)
	res.Merge(v.ValidateCombatUnitRefs(u, ds))
	return res
}
