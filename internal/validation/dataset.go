// internal/validation/dataset.go
package validation

import (
	"fmt"
	"time"
)

// ValidateAll validates the entire dataset: per-entity passes over all four
// collections in a fixed order, then collection presence and export
// readiness. The output is deterministic for an unchanged dataset.
//
// With the fail-fast option the pass stops after the first entity whose
// checks produce an error; presence and readiness checks are skipped.
func (v *Validator) ValidateAll(ds Dataset) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateAll")

	start := time.Now()

	for _, l := range ds.Leaders() {
		res.Merge(v.ValidateLeader(l, ds))
		if v.failFast && !res.IsValid() {
			return res
		}
	}
	for _, p := range ds.WeaponProfiles() {
		res.Merge(v.ValidateWeaponProfile(p, ds))
		if v.failFast && !res.IsValid() {
			return res
		}
	}
	for _, p := range ds.UnitProfiles() {
		res.Merge(v.ValidateUnitProfile(p, ds))
		if v.failFast && !res.IsValid() {
			return res
		}
	}
	for _, u := range ds.CombatUnits() {
		res.Merge(v.ValidateCombatUnit(u, ds))
		if v.failFast && !res.IsValid() {
			return res
		}
	}

	v.checkPresence(res, ds)
	v.checkExportReadiness(res, ds)

	v.log.Debug("dataset validation finished",
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
		"duration", time.Since(start))

	return res
}

// checkPresence warns when a collection a playable scenario needs is empty.
func (v *Validator) checkPresence(res *Result, ds Dataset) {
	if len(ds.Leaders()) == 0 {
		res.AddWarning("no leaders are defined")
	}
	if len(ds.WeaponProfiles()) == 0 {
		res.AddWarning("no weapon system profiles are defined")
	}
	if len(ds.UnitProfiles()) == 0 {
		res.AddWarning("no unit profiles are defined")
	}
	if len(ds.CombatUnits()) == 0 {
		res.AddWarning("no combat units are defined")
	}
}

// checkExportReadiness blocks export when units are missing the profiles
// the scenario frontend requires, or when units exist without any profile
// collections to draw from.
func (v *Validator) checkExportReadiness(res *Result, ds Dataset) {
	units := ds.CombatUnits()
	if len(units) > 0 {
		if len(ds.WeaponProfiles()) == 0 {
			res.AddError("combat units exist but no weapon system profiles are defined; the scenario cannot be exported")
		}
		if len(ds.UnitProfiles()) == 0 {
			res.AddError("combat units exist but no unit profiles are defined; the scenario cannot be exported")
		}
	}

	missing := 0
	for _, u := range units {
		if u.DeployedProfile == nil || u.UnitProfile == nil {
			missing++
		}
	}
	if missing > 0 {
		res.AddError(fmt.Sprintf("%d combat unit(s) are missing required profiles; the scenario cannot be exported", missing))
	}
}
