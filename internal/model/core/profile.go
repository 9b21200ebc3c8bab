// internal/model/core/profile.go
package core

// WeaponSystemProfile describes the combat characteristics of one weapon
// system (a vehicle, gun, or infantry equipment set). Combat ratings are
// attack/defense values per target domain; ranges are in scenario hexes.
type WeaponSystemProfile struct {
	WeaponSystemID string       `json:"weaponSystemId"`
	Name           string       `json:"name"`
	Nationality    Nationality  `json:"nationality"`
	WeaponSystem   WeaponSystem `json:"weaponSystem"`

	PrimaryRange     float64 `json:"primaryRange"`
	IndirectRange    float64 `json:"indirectRange"`
	SpottingRange    float64 `json:"spottingRange"`
	MovementModifier float64 `json:"movementModifier"`

	LandHardAttack  int `json:"landHardAttack"`
	LandHardDefense int `json:"landHardDefense"`
	LandSoftAttack  int `json:"landSoftAttack"`
	LandSoftDefense int `json:"landSoftDefense"`
	LandAirAttack   int `json:"landAirAttack"`
	LandAirDefense  int `json:"landAirDefense"`
	AirAttack       int `json:"airAttack"`
	AirDefense      int `json:"airDefense"`
	AirGroundAttack int `json:"airGroundAttack"`
	Avionics        int `json:"avionics"`
	StrategicAttack int `json:"strategicAttack"`
}

// Ratings lists every combat rating with its display name, in declaration
// order, so validators and exporters can walk them uniformly.
func (p *WeaponSystemProfile) Ratings() []Rating {
	return []Rating{
		{"land hard attack", p.LandHardAttack},
		{"land hard defense", p.LandHardDefense},
		{"land soft attack", p.LandSoftAttack},
		{"land soft defense", p.LandSoftDefense},
		{"land air attack", p.LandAirAttack},
		{"land air defense", p.LandAirDefense},
		{"air attack", p.AirAttack},
		{"air defense", p.AirDefense},
		{"air ground attack", p.AirGroundAttack},
		{"avionics", p.Avionics},
		{"strategic attack", p.StrategicAttack},
	}
}

// UnitProfile is an equipment roster template: how many of each weapon
// system category a unit of this profile fields.
type UnitProfile struct {
	UnitProfileID string               `json:"unitProfileId"`
	Name          string               `json:"name"`
	Nationality   Nationality          `json:"nationality"`
	Equipment     map[WeaponSystem]int `json:"equipment"`
}

// TotalEquipment sums all equipment quantities in the roster.
func (p *UnitProfile) TotalEquipment() int {
	total := 0
	for _, qty := range p.Equipment {
		total += qty
	}
	return total
}
