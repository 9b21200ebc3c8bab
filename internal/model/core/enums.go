// internal/model/core/enums.go
package core

import (
	"fmt"
	"strings"
)

// parseEnum resolves a case-insensitive display name against an enum name table.
func parseEnum[E comparable](kind string, names map[E]string, s string) (E, error) {
	var zero E
	for v, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}

// Side is the faction a leader or combat unit fights for.
type Side uint8

const (
	SideUnknown Side = iota
	SideFriendly
	SideEnemy
)

var sideNames = map[Side]string{
	SideFriendly: "FRIENDLY",
	SideEnemy:    "ENEMY",
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether s is one of the two playable sides.
func (s Side) Valid() bool {
	_, ok := sideNames[s]
	return ok
}

func ParseSide(s string) (Side, error) {
	return parseEnum("side", sideNames, s)
}

// Nationality identifies the nation an entity belongs to.
type Nationality uint8

const (
	NationalityUnknown Nationality = iota
	NationalityUSA
	NationalityFRG
	NationalityUK
	NationalityUSSR
	NationalityDDR
	NationalityPoland
	NationalityCzechoslovakia
)

var nationalityNames = map[Nationality]string{
	NationalityUSA:            "USA",
	NationalityFRG:            "FRG",
	NationalityUK:             "UK",
	NationalityUSSR:           "USSR",
	NationalityDDR:            "DDR",
	NationalityPoland:         "POLAND",
	NationalityCzechoslovakia: "CZECHOSLOVAKIA",
}

func (n Nationality) String() string {
	if name, ok := nationalityNames[n]; ok {
		return name
	}
	return "UNKNOWN"
}

func (n Nationality) Valid() bool {
	_, ok := nationalityNames[n]
	return ok
}

func ParseNationality(s string) (Nationality, error) {
	return parseEnum("nationality", nationalityNames, s)
}

// CommandGrade is the seniority tier of a leader.
type CommandGrade uint8

const (
	CommandGradeUnknown CommandGrade = iota
	CommandGradeJunior
	CommandGradeSenior
	CommandGradeTop
)

var commandGradeNames = map[CommandGrade]string{
	CommandGradeJunior: "JUNIOR",
	CommandGradeSenior: "SENIOR",
	CommandGradeTop:    "TOP",
}

func (g CommandGrade) String() string {
	if name, ok := commandGradeNames[g]; ok {
		return name
	}
	return "UNKNOWN"
}

func (g CommandGrade) Valid() bool {
	_, ok := commandGradeNames[g]
	return ok
}

func ParseCommandGrade(s string) (CommandGrade, error) {
	return parseEnum("command grade", commandGradeNames, s)
}

// CombatCommand is the service branch a leader may command.
type CombatCommand uint8

const (
	CombatCommandUnknown CombatCommand = iota
	CombatCommandGround
	CombatCommandAir
	CombatCommandNaval
)

var combatCommandNames = map[CombatCommand]string{
	CombatCommandGround: "GROUND",
	CombatCommandAir:    "AIR",
	CombatCommandNaval:  "NAVAL",
}

func (c CombatCommand) String() string {
	if name, ok := combatCommandNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

func (c CombatCommand) Valid() bool {
	_, ok := combatCommandNames[c]
	return ok
}

func ParseCombatCommand(s string) (CombatCommand, error) {
	return parseEnum("combat command", combatCommandNames, s)
}

// WeaponSystem is the broad category of a weapon system profile. Profile
// identifiers conventionally embed the category name, e.g. USSR_TANK_T80B.
type WeaponSystem uint8

const (
	WeaponSystemUnknown WeaponSystem = iota
	WeaponSystemInfantry
	WeaponSystemTank
	WeaponSystemIFV
	WeaponSystemAPC
	WeaponSystemArtillery
	WeaponSystemRocket
	WeaponSystemAirDefense
	WeaponSystemATGM
	WeaponSystemHelicopter
	WeaponSystemFighter
	WeaponSystemBomber
	WeaponSystemRecon
	WeaponSystemTransport
)

var weaponSystemNames = map[WeaponSystem]string{
	WeaponSystemInfantry:   "INFANTRY",
	WeaponSystemTank:       "TANK",
	WeaponSystemIFV:        "IFV",
	WeaponSystemAPC:        "APC",
	WeaponSystemArtillery:  "ARTILLERY",
	WeaponSystemRocket:     "ROCKET",
	WeaponSystemAirDefense: "AIRDEFENSE",
	WeaponSystemATGM:       "ATGM",
	WeaponSystemHelicopter: "HELICOPTER",
	WeaponSystemFighter:    "FIGHTER",
	WeaponSystemBomber:     "BOMBER",
	WeaponSystemRecon:      "RECON",
	WeaponSystemTransport:  "TRANSPORT",
}

func (w WeaponSystem) String() string {
	if name, ok := weaponSystemNames[w]; ok {
		return name
	}
	return "UNKNOWN"
}

func (w WeaponSystem) Valid() bool {
	_, ok := weaponSystemNames[w]
	return ok
}

func ParseWeaponSystem(s string) (WeaponSystem, error) {
	return parseEnum("weapon system", weaponSystemNames, s)
}

// UnitType is the arm of service of a combat unit.
type UnitType uint8

const (
	UnitTypeUnknown UnitType = iota
	UnitTypeInfantry
	UnitTypeMechanized
	UnitTypeArmored
	UnitTypeArtillery
	UnitTypeAirDefense
	UnitTypeHelicopter
	UnitTypeFixedWing
	UnitTypeSupport
)

var unitTypeNames = map[UnitType]string{
	UnitTypeInfantry:   "INFANTRY",
	UnitTypeMechanized: "MECHANIZED",
	UnitTypeArmored:    "ARMORED",
	UnitTypeArtillery:  "ARTILLERY",
	UnitTypeAirDefense: "AIRDEFENSE",
	UnitTypeHelicopter: "HELICOPTER",
	UnitTypeFixedWing:  "FIXEDWING",
	UnitTypeSupport:    "SUPPORT",
}

func (t UnitType) String() string {
	if name, ok := unitTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t UnitType) Valid() bool {
	_, ok := unitTypeNames[t]
	return ok
}

func ParseUnitType(s string) (UnitType, error) {
	return parseEnum("unit type", unitTypeNames, s)
}

// Classification is the readiness class of a combat unit.
type Classification uint8

const (
	ClassificationUnknown Classification = iota
	ClassificationRegular
	ClassificationGuards
	ClassificationReserve
	ClassificationMilitia
)

var classificationNames = map[Classification]string{
	ClassificationRegular: "REGULAR",
	ClassificationGuards:  "GUARDS",
	ClassificationReserve: "RESERVE",
	ClassificationMilitia: "MILITIA",
}

func (c Classification) String() string {
	if name, ok := classificationNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

func (c Classification) Valid() bool {
	_, ok := classificationNames[c]
	return ok
}

func ParseClassification(s string) (Classification, error) {
	return parseEnum("classification", classificationNames, s)
}

// UnitRole is the tasking of a combat unit in the scenario.
type UnitRole uint8

const (
	UnitRoleUnknown UnitRole = iota
	UnitRoleAssault
	UnitRoleDefend
	UnitRoleRecon
	UnitRoleReserve
	UnitRoleSupport
)

var unitRoleNames = map[UnitRole]string{
	UnitRoleAssault: "ASSAULT",
	UnitRoleDefend:  "DEFEND",
	UnitRoleRecon:   "RECON",
	UnitRoleReserve: "RESERVE",
	UnitRoleSupport: "SUPPORT",
}

func (r UnitRole) String() string {
	if name, ok := unitRoleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r UnitRole) Valid() bool {
	_, ok := unitRoleNames[r]
	return ok
}

func ParseUnitRole(s string) (UnitRole, error) {
	return parseEnum("unit role", unitRoleNames, s)
}

// ExperienceLevel is the training standard of a combat unit.
type ExperienceLevel uint8

const (
	ExperienceUnknown ExperienceLevel = iota
	ExperienceRaw
	ExperienceGreen
	ExperienceTrained
	ExperienceExperienced
	ExperienceVeteran
	ExperienceElite
)

var experienceNames = map[ExperienceLevel]string{
	ExperienceRaw:         "RAW",
	ExperienceGreen:       "GREEN",
	ExperienceTrained:     "TRAINED",
	ExperienceExperienced: "EXPERIENCED",
	ExperienceVeteran:     "VETERAN",
	ExperienceElite:       "ELITE",
}

func (e ExperienceLevel) String() string {
	if name, ok := experienceNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

func (e ExperienceLevel) Valid() bool {
	_, ok := experienceNames[e]
	return ok
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	return parseEnum("experience level", experienceNames, s)
}

// EfficiencyLevel is the current combat effectiveness of a unit.
type EfficiencyLevel uint8

const (
	EfficiencyUnknown EfficiencyLevel = iota
	EfficiencyBroken
	EfficiencyWeakened
	EfficiencyOperational
	EfficiencyEffective
	EfficiencyPeak
)

var efficiencyNames = map[EfficiencyLevel]string{
	EfficiencyBroken:      "BROKEN",
	EfficiencyWeakened:    "WEAKENED",
	EfficiencyOperational: "OPERATIONAL",
	EfficiencyEffective:   "EFFECTIVE",
	EfficiencyPeak:        "PEAK",
}

func (e EfficiencyLevel) String() string {
	if name, ok := efficiencyNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

func (e EfficiencyLevel) Valid() bool {
	_, ok := efficiencyNames[e]
	return ok
}

func ParseEfficiencyLevel(s string) (EfficiencyLevel, error) {
	return parseEnum("efficiency level", efficiencyNames, s)
}

// CombatState is the posture of a combat unit on the map.
type CombatState uint8

const (
	CombatStateUnknown CombatState = iota
	CombatStateMoving
	CombatStateDeployed
	CombatStateHastyDefense
	CombatStatePrepared
	CombatStateFortified
)

var combatStateNames = map[CombatState]string{
	CombatStateMoving:       "MOVING",
	CombatStateDeployed:     "DEPLOYED",
	CombatStateHastyDefense: "HASTYDEFENSE",
	CombatStatePrepared:     "PREPARED",
	CombatStateFortified:    "FORTIFIED",
}

func (s CombatState) String() string {
	if name, ok := combatStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s CombatState) Valid() bool {
	_, ok := combatStateNames[s]
	return ok
}

func ParseCombatState(s string) (CombatState, error) {
	return parseEnum("combat state", combatStateNames, s)
}
