// internal/validation/fields.go
package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/scenforge/unitcreator/internal/model/core"
)

// ValidateLeaderFields checks a single leader's fields in isolation.
func (v *Validator) ValidateLeaderFields(l core.Leader) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateLeaderFields")

	if l.LeaderID == "" {
		res.AddError("leader ID is required")
	}
	if l.Name == "" {
		res.AddError(fmt.Sprintf("leader '%s': name is required", l.LeaderID))
	} else if n := utf8.RuneCountInString(l.Name); n < MinLeaderNameLength || n > MaxLeaderNameLength {
		res.AddError(fmt.Sprintf("leader '%s': name must be between %d and %d characters (got %d)",
			l.LeaderID, MinLeaderNameLength, MaxLeaderNameLength, n))
	}

	if !l.Side.Valid() {
		res.AddError(fmt.Sprintf("leader '%s': side is not set to a valid value", l.LeaderID))
	}
	if !l.Nationality.Valid() {
		res.AddError(fmt.Sprintf("leader '%s': nationality is not set to a valid value", l.LeaderID))
	}
	if !l.CommandGrade.Valid() {
		res.AddError(fmt.Sprintf("leader '%s': command grade is not set to a valid value", l.LeaderID))
	}
	if !l.CombatCommand.Valid() {
		res.AddError(fmt.Sprintf("leader '%s': combat command is not set to a valid value", l.LeaderID))
	}

	if l.ReputationPoints < 0 {
		res.AddError(fmt.Sprintf("leader '%s': reputation points must not be negative (got %d)",
			l.LeaderID, l.ReputationPoints))
	} else if l.ReputationPoints > ReputationWarnLimit {
		res.AddWarning(fmt.Sprintf("leader '%s': reputation points %d exceed the expected maximum of %d",
			l.LeaderID, l.ReputationPoints, ReputationWarnLimit))
	}

	if l.IsAssigned && l.UnitID == "" {
		res.AddError(fmt.Sprintf("leader '%s': marked assigned but has no unit ID", l.LeaderID))
	}
	if !l.IsAssigned && l.UnitID != "" {
		res.AddError(fmt.Sprintf("leader '%s': has unit ID '%s' but is not marked assigned",
			l.LeaderID, l.UnitID))
	}

	return res
}

// ValidateWeaponProfileFields checks a single weapon system profile's fields
// in isolation.
func (v *Validator) ValidateWeaponProfileFields(p core.WeaponSystemProfile) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateWeaponProfileFields")

	if p.WeaponSystemID == "" {
		res.AddError("weapon system profile ID is required")
	}
	if p.Name == "" {
		res.AddError(fmt.Sprintf("weapon system profile '%s': name is required", p.WeaponSystemID))
	}
	if !p.Nationality.Valid() {
		res.AddError(fmt.Sprintf("weapon system profile '%s': nationality is not set to a valid value",
			p.WeaponSystemID))
	}
	if !p.WeaponSystem.Valid() {
		res.AddError(fmt.Sprintf("weapon system profile '%s': weapon system category is not set to a valid value",
			p.WeaponSystemID))
	}

	allZero := true
	for _, rating := range p.Ratings() {
		if rating.Value != 0 {
			allZero = false
		}
		if rating.Value < MinCombatRating || rating.Value > MaxCombatRating {
			res.AddError(fmt.Sprintf("weapon system profile '%s': %s must be between %d and %d (got %d)",
				p.WeaponSystemID, rating.Name, MinCombatRating, MaxCombatRating, rating.Value))
		}
	}
	if allZero {
		res.AddWarning(fmt.Sprintf("weapon system profile '%s': all combat ratings are zero",
			p.WeaponSystemID))
	}

	ranges := []struct {
		name  string
		value float64
	}{
		{"primary range", p.PrimaryRange},
		{"indirect range", p.IndirectRange},
		{"spotting range", p.SpottingRange},
	}
	for _, rg := range ranges {
		if rg.value < MinRange || rg.value > MaxRange {
			res.AddError(fmt.Sprintf("weapon system profile '%s': %s must be between %g and %g (got %g)",
				p.WeaponSystemID, rg.name, MinRange, MaxRange, rg.value))
		}
	}

	if p.MovementModifier < MinMovementModifier || p.MovementModifier > MaxMovementModifier {
		res.AddError(fmt.Sprintf("weapon system profile '%s': movement modifier must be between %g and %g (got %g)",
			p.WeaponSystemID, MinMovementModifier, MaxMovementModifier, p.MovementModifier))
	}

	return res
}

// ValidateUnitProfileFields checks a single unit profile's fields in
// isolation.
func (v *Validator) ValidateUnitProfileFields(p core.UnitProfile) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateUnitProfileFields")

	if p.UnitProfileID == "" {
		res.AddError("unit profile ID is required")
	}
	if p.Name == "" {
		res.AddError(fmt.Sprintf("unit profile '%s': name is required", p.UnitProfileID))
	}
	if !p.Nationality.Valid() {
		res.AddError(fmt.Sprintf("unit profile '%s': nationality is not set to a valid value",
			p.UnitProfileID))
	}

	for system, qty := range p.Equipment {
		if qty < 0 {
			res.AddError(fmt.Sprintf("unit profile '%s': equipment quantity for %s must not be negative (got %d)",
				p.UnitProfileID, system, qty))
		} else if qty > EquipmentQuantityWarnLimit {
			res.AddWarning(fmt.Sprintf("unit profile '%s': equipment quantity %d for %s exceeds the expected maximum of %d",
				p.UnitProfileID, qty, system, EquipmentQuantityWarnLimit))
		}
	}
	if p.TotalEquipment() == 0 {
		res.AddWarning(fmt.Sprintf("unit profile '%s': has no equipment", p.UnitProfileID))
	}

	return res
}

// ValidateCombatUnitFields checks a single combat unit's fields in
// isolation, including presence of its required profiles.
func (v *Validator) ValidateCombatUnitFields(u core.CombatUnit) *Result {
	res := NewResult()
	defer v.recoverInto(res, "ValidateCombatUnitFields")

	if u.UnitID == "" {
		res.AddError("combat unit ID is required")
	}
	if u.UnitName == "" {
		res.AddError(fmt.Sprintf("combat unit '%s': unit name is required", u.UnitID))
	}

	if !u.UnitType.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': unit type is not set to a valid value", u.UnitID))
	}
	if !u.Classification.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': classification is not set to a valid value", u.UnitID))
	}
	if !u.Role.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': role is not set to a valid value", u.UnitID))
	}
	if !u.Side.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': side is not set to a valid value", u.UnitID))
	}
	if !u.Nationality.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': nationality is not set to a valid value", u.UnitID))
	}
	if !u.Experience.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': experience level is not set to a valid value", u.UnitID))
	}
	if !u.Efficiency.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': efficiency level is not set to a valid value", u.UnitID))
	}
	if !u.CombatState.Valid() {
		res.AddError(fmt.Sprintf("combat unit '%s': combat state is not set to a valid value", u.UnitID))
	}

	if u.DeployedProfile == nil {
		res.AddError(fmt.Sprintf("combat unit '%s': deployed profile is required", u.UnitID))
	}
	if u.IsMounted && u.MountedProfile == nil {
		res.AddError(fmt.Sprintf("combat unit '%s': mounted but has no mounted profile", u.UnitID))
	}
	if u.UnitProfile == nil {
		res.AddWarning(fmt.Sprintf("combat unit '%s': has no unit profile", u.UnitID))
	}

	if u.HitPoints.Max <= 0 {
		res.AddError(fmt.Sprintf("combat unit '%s': maximum hit points must be positive (got %d)",
			u.UnitID, u.HitPoints.Max))
	} else if u.HitPoints.Current < 0 || u.HitPoints.Current > u.HitPoints.Max {
		res.AddError(fmt.Sprintf("combat unit '%s': hit points %d outside the valid range 0..%d",
			u.UnitID, u.HitPoints.Current, u.HitPoints.Max))
	}

	if u.DaysSupply.Max == 0 {
		res.AddWarning(fmt.Sprintf("combat unit '%s': has zero supply capacity", u.UnitID))
	} else if u.DaysSupply.Max < 0 {
		res.AddError(fmt.Sprintf("combat unit '%s': maximum days of supply must not be negative (got %d)",
			u.UnitID, u.DaysSupply.Max))
	} else if u.DaysSupply.Current < 0 || u.DaysSupply.Current > u.DaysSupply.Max {
		res.AddError(fmt.Sprintf("combat unit '%s': days of supply %d outside the valid range 0..%d",
			u.UnitID, u.DaysSupply.Current, u.DaysSupply.Max))
	}

	return res
}
