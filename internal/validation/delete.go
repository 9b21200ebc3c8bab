// internal/validation/delete.go
package validation

import (
	"fmt"
	"strings"
)

// CanDeleteLeader reports whether the leader can be removed. A leader
// assigned as any unit's commanding officer cannot be deleted; the single
// error lists the blocking unit names.
func (v *Validator) CanDeleteLeader(leaderID string, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "CanDeleteLeader")

	var blocking []string
	for _, u := range ds.CombatUnits() {
		if u.CommandingOfficer != nil && u.CommandingOfficer.LeaderID == leaderID {
			blocking = append(blocking, u.UnitName)
		}
	}
	if len(blocking) > 0 {
		res.AddError(fmt.Sprintf("cannot delete leader '%s': commanding unit(s) %s",
			leaderID, strings.Join(blocking, ", ")))
	}

	return res
}

// CanDeleteWeaponProfile reports whether the weapon system profile can be
// removed. Profiles referenced as any unit's deployed or mounted profile
// cannot be deleted.
func (v *Validator) CanDeleteWeaponProfile(weaponSystemID string, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "CanDeleteWeaponProfile")

	var blocking []string
	for _, u := range ds.CombatUnits() {
		deployed := u.DeployedProfile != nil && u.DeployedProfile.WeaponSystemID == weaponSystemID
		mounted := u.MountedProfile != nil && u.MountedProfile.WeaponSystemID == weaponSystemID
		if deployed || mounted {
			blocking = append(blocking, u.UnitName)
		}
	}
	if len(blocking) > 0 {
		res.AddError(fmt.Sprintf("cannot delete weapon system profile '%s': in use by unit(s) %s",
			weaponSystemID, strings.Join(blocking, ", ")))
	}

	return res
}

// CanDeleteUnitProfile reports whether the unit profile can be removed.
// Profiles referenced by any combat unit cannot be deleted.
func (v *Validator) CanDeleteUnitProfile(unitProfileID string, ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "CanDeleteUnitProfile")

	var blocking []string
	for _, u := range ds.CombatUnits() {
		if u.UnitProfile != nil && u.UnitProfile.UnitProfileID == unitProfileID {
			blocking = append(blocking, u.UnitName)
		}
	}
	if len(blocking) > 0 {
		res.AddError(fmt.Sprintf("cannot delete unit profile '%s': in use by unit(s) %s",
			unitProfileID, strings.Join(blocking, ", ")))
	}

	return res
}
