package v1

import (
	"fmt"
	"time"

	"github.com/scenforge/unitcreator/internal/geo"
	"github.com/scenforge/unitcreator/internal/model/core"
	"github.com/scenforge/unitcreator/internal/store"
)

// Build assembles the v1 export document from a scenario store. Collections
// come back from the store sorted by identity, so building twice from an
// unchanged store yields identical documents.
func Build(st *store.Store) (Export, error) {
	meta := st.Metadata()

	export := Export{
		CreatorVersion:  meta.CreatorVersion,
		ScenarioName:    meta.Name,
		ScenarioAuthor:  meta.Author,
		Theater:         meta.Theater,
		StartTime:       meta.StartTime.Format(time.RFC3339),
		OriginLatitude:  meta.OriginLatitude,
		OriginLongitude: meta.OriginLongitude,
		Leaders:         make([]Leader, 0),
		WeaponProfiles:  make([]WeaponProfile, 0),
		UnitProfiles:    make([]UnitProfile, 0),
		CombatUnits:     make([]CombatUnit, 0),
	}

	for _, l := range st.Leaders() {
		export.Leaders = append(export.Leaders, Leader{
			LeaderID:         l.LeaderID,
			Name:             l.Name,
			Side:             l.Side.String(),
			Nationality:      l.Nationality.String(),
			CommandGrade:     l.CommandGrade.String(),
			CombatCommand:    l.CombatCommand.String(),
			ReputationPoints: l.ReputationPoints,
			IsAssigned:       l.IsAssigned,
			UnitID:           l.UnitID,
		})
	}

	for _, p := range st.WeaponProfiles() {
		export.WeaponProfiles = append(export.WeaponProfiles, WeaponProfile{
			WeaponSystemID:   p.WeaponSystemID,
			Name:             p.Name,
			Nationality:      p.Nationality.String(),
			WeaponSystem:     p.WeaponSystem.String(),
			PrimaryRange:     p.PrimaryRange,
			IndirectRange:    p.IndirectRange,
			SpottingRange:    p.SpottingRange,
			MovementModifier: p.MovementModifier,
			LandHardAttack:   p.LandHardAttack,
			LandHardDefense:  p.LandHardDefense,
			LandSoftAttack:   p.LandSoftAttack,
			LandSoftDefense:  p.LandSoftDefense,
			LandAirAttack:    p.LandAirAttack,
			LandAirDefense:   p.LandAirDefense,
			AirAttack:        p.AirAttack,
			AirDefense:       p.AirDefense,
			AirGroundAttack:  p.AirGroundAttack,
			Avionics:         p.Avionics,
			StrategicAttack:  p.StrategicAttack,
		})
	}

	for _, p := range st.UnitProfiles() {
		equipment := make(map[string]int, len(p.Equipment))
		for category, qty := range p.Equipment {
			equipment[category.String()] = qty
		}
		export.UnitProfiles = append(export.UnitProfiles, UnitProfile{
			UnitProfileID: p.UnitProfileID,
			Name:          p.Name,
			Nationality:   p.Nationality.String(),
			Equipment:     equipment,
		})
	}

	for _, u := range st.CombatUnits() {
		entry, err := buildCombatUnit(u, meta)
		if err != nil {
			return Export{}, fmt.Errorf("unit '%s': %w", u.UnitID, err)
		}
		export.CombatUnits = append(export.CombatUnits, entry)
	}

	return export, nil
}

func buildCombatUnit(u core.CombatUnit, meta core.Scenario) (CombatUnit, error) {
	lat, lon, err := geo.LatLonFromGrid(meta.OriginLatitude, meta.OriginLongitude, u.Position)
	if err != nil {
		return CombatUnit{}, fmt.Errorf("converting position: %w", err)
	}
	point, err := geo.Point3857FromGrid(meta.OriginLongitude, meta.OriginLatitude, u.Position)
	if err != nil {
		return CombatUnit{}, fmt.Errorf("projecting position: %w", err)
	}
	coords, _ := point.Coordinates()

	entry := CombatUnit{
		UnitID:         u.UnitID,
		UnitName:       u.UnitName,
		UnitType:       u.UnitType.String(),
		Classification: u.Classification.String(),
		Role:           u.Role.String(),
		Side:           u.Side.String(),
		Nationality:    u.Nationality.String(),
		Experience:     u.Experience.String(),
		Efficiency:     u.Efficiency.String(),
		CombatState:    u.CombatState.String(),
		IsMounted:      u.IsMounted,
		HitPoints:      u.HitPoints.Current,
		HitPointsMax:   u.HitPoints.Max,
		DaysSupply:     u.DaysSupply.Current,
		DaysSupplyMax:  u.DaysSupply.Max,
		GridX:          u.Position.X,
		GridY:          u.Position.Y,
		Latitude:       lat,
		Longitude:      lon,
		MapPosition:    []float64{coords.X, coords.Y},
	}

	if u.DeployedProfile != nil {
		entry.DeployedProfileID = u.DeployedProfile.WeaponSystemID
	}
	if u.MountedProfile != nil {
		entry.MountedProfileID = u.MountedProfile.WeaponSystemID
	}
	if u.UnitProfile != nil {
		entry.UnitProfileID = u.UnitProfile.UnitProfileID
	}
	if u.CommandingOfficer != nil {
		entry.CommandingOfficerID = u.CommandingOfficer.LeaderID
	}

	return entry, nil
}
