// internal/model/core/unit.go
package core

// CombatUnit is a maneuver unit placed on the scenario map. Profile and
// leader references are pointers; nil means the reference is absent.
type CombatUnit struct {
	UnitID         string         `json:"unitId"`
	UnitName       string         `json:"unitName"`
	UnitType       UnitType       `json:"unitType"`
	Classification Classification `json:"classification"`
	Role           UnitRole       `json:"role"`
	Side           Side           `json:"side"`
	Nationality    Nationality    `json:"nationality"`

	Experience  ExperienceLevel `json:"experience"`
	Efficiency  EfficiencyLevel `json:"efficiency"`
	CombatState CombatState     `json:"combatState"`
	IsMounted   bool            `json:"isMounted"`

	DeployedProfile *WeaponSystemProfile `json:"deployedProfile"`
	MountedProfile  *WeaponSystemProfile `json:"mountedProfile"`
	UnitProfile     *UnitProfile         `json:"unitProfile"`

	CommandingOfficer *Leader `json:"commandingOfficer"`

	HitPoints  StatPair     `json:"hitPoints"`
	DaysSupply StatPair     `json:"daysSupply"`
	Position   GridPosition `json:"position"`
}

// IsLeaderAssigned reports whether the unit has a commanding officer.
func (u *CombatUnit) IsLeaderAssigned() bool {
	return u.CommandingOfficer != nil
}

// ActiveProfile returns the weapon system profile matching the unit's
// mounted state, which may be nil.
func (u *CombatUnit) ActiveProfile() *WeaponSystemProfile {
	if u.IsMounted {
		return u.MountedProfile
	}
	return u.DeployedProfile
}
