package parser

import (
	"fmt"
	"strconv"

	"github.com/scenforge/unitcreator/internal/model"
)

// ratingFieldCount is the number of combat rating columns in a weapon
// system profile record, in declaration order of model.WeaponProfile.
const ratingFieldCount = 11

// ParseWeaponProfile parses weapon system profile data and returns a
// WeaponProfile model.
// Fields: [weaponSystemId, name, nationality, weaponSystem, primaryRange,
// indirectRange, spottingRange, movementModifier, landHardAttack,
// landHardDefense, landSoftAttack, landSoftDefense, landAirAttack,
// landAirDefense, airAttack, airDefense, airGroundAttack, avionics,
// strategicAttack]
func (p *Parser) ParseWeaponProfile(data []string) (model.WeaponProfile, error) {
	var profile model.WeaponProfile

	if len(data) < 8+ratingFieldCount {
		return profile, fmt.Errorf("weapon profile record needs %d fields, got %d",
			8+ratingFieldCount, len(data))
	}

	profile.ScenarioID = p.getScenarioID()
	profile.WeaponSystemID = data[0]
	profile.Name = data[1]
	profile.Nationality = data[2]
	profile.WeaponSystem = data[3]

	var err error
	profile.PrimaryRange, err = strconv.ParseFloat(data[4], 64)
	if err != nil {
		return profile, fmt.Errorf("error parsing primaryRange: %w", err)
	}
	profile.IndirectRange, err = strconv.ParseFloat(data[5], 64)
	if err != nil {
		return profile, fmt.Errorf("error parsing indirectRange: %w", err)
	}
	profile.SpottingRange, err = strconv.ParseFloat(data[6], 64)
	if err != nil {
		return profile, fmt.Errorf("error parsing spottingRange: %w", err)
	}
	profile.MovementModifier, err = strconv.ParseFloat(data[7], 64)
	if err != nil {
		return profile, fmt.Errorf("error parsing movementModifier: %w", err)
	}

	ratings := make([]int, ratingFieldCount)
	for i := range ratings {
		v, err := parseIntFromFloat(data[8+i])
		if err != nil {
			return profile, fmt.Errorf("error parsing rating field %d: %w", 8+i, err)
		}
		ratings[i] = int(v)
	}
	profile.LandHardAttack = ratings[0]
	profile.LandHardDefense = ratings[1]
	profile.LandSoftAttack = ratings[2]
	profile.LandSoftDefense = ratings[3]
	profile.LandAirAttack = ratings[4]
	profile.LandAirDefense = ratings[5]
	profile.AirAttack = ratings[6]
	profile.AirDefense = ratings[7]
	profile.AirGroundAttack = ratings[8]
	profile.Avionics = ratings[9]
	profile.StrategicAttack = ratings[10]

	return profile, nil
}
