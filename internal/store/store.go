// Package store holds a scenario's working data in memory. It is the
// mutable counterpart of the read-only validation.Dataset view: editors and
// importers add and remove entities here, validators and exporters read it.
package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/scenforge/unitcreator/internal/model/core"
)

// Store keeps the four entity collections plus scenario metadata. All
// methods are safe for concurrent use. Enumeration returns copies sorted by
// identity so repeated reads of an unchanged store yield identical output.
//
// Collections are slices rather than maps so that datasets with duplicate
// identities, as imported files may contain, stay representable and
// visible to validation.
type Store struct {
	mu sync.RWMutex

	meta           core.Scenario
	leaders        []core.Leader
	weaponProfiles []core.WeaponSystemProfile
	unitProfiles   []core.UnitProfile
	combatUnits    []core.CombatUnit
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetMetadata replaces the scenario metadata.
func (s *Store) SetMetadata(meta core.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = meta
}

// Metadata returns the scenario metadata.
func (s *Store) Metadata() core.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Clear drops all entities and metadata.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = core.Scenario{}
	s.leaders = nil
	s.weaponProfiles = nil
	s.unitProfiles = nil
	s.combatUnits = nil
}

// AddLeader appends a leader. Duplicate identities are kept; validation
// reports them.
func (s *Store) AddLeader(l core.Leader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaders = append(s.leaders, l)
}

// RemoveLeader removes all leaders with the given identity and reports
// whether any were removed.
func (s *Store) RemoveLeader(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.leaders)
	s.leaders = slices.DeleteFunc(s.leaders, func(l core.Leader) bool {
		return l.LeaderID == id
	})
	return len(s.leaders) != before
}

// AddWeaponProfile appends a weapon system profile.
func (s *Store) AddWeaponProfile(p core.WeaponSystemProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weaponProfiles = append(s.weaponProfiles, p)
}

// RemoveWeaponProfile removes all weapon system profiles with the given
// identity and reports whether any were removed.
func (s *Store) RemoveWeaponProfile(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.weaponProfiles)
	s.weaponProfiles = slices.DeleteFunc(s.weaponProfiles, func(p core.WeaponSystemProfile) bool {
		return p.WeaponSystemID == id
	})
	return len(s.weaponProfiles) != before
}

// AddUnitProfile appends a unit profile.
func (s *Store) AddUnitProfile(p core.UnitProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitProfiles = append(s.unitProfiles, p)
}

// RemoveUnitProfile removes all unit profiles with the given identity and
// reports whether any were removed.
func (s *Store) RemoveUnitProfile(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.unitProfiles)
	s.unitProfiles = slices.DeleteFunc(s.unitProfiles, func(p core.UnitProfile) bool {
		return p.UnitProfileID == id
	})
	return len(s.unitProfiles) != before
}

// AddCombatUnit appends a combat unit.
func (s *Store) AddCombatUnit(u core.CombatUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.combatUnits = append(s.combatUnits, u)
}

// RemoveCombatUnit removes all combat units with the given identity and
// reports whether any were removed.
func (s *Store) RemoveCombatUnit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.combatUnits)
	s.combatUnits = slices.DeleteFunc(s.combatUnits, func(u core.CombatUnit) bool {
		return u.UnitID == id
	})
	return len(s.combatUnits) != before
}

// Leaders returns all leaders sorted by identity.
func (s *Store) Leaders() []core.Leader {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.leaders)
	slices.SortStableFunc(out, func(a, b core.Leader) int {
		return strings.Compare(a.LeaderID, b.LeaderID)
	})
	return out
}

// WeaponProfiles returns all weapon system profiles sorted by identity.
func (s *Store) WeaponProfiles() []core.WeaponSystemProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.weaponProfiles)
	slices.SortStableFunc(out, func(a, b core.WeaponSystemProfile) int {
		return strings.Compare(a.WeaponSystemID, b.WeaponSystemID)
	})
	return out
}

// UnitProfiles returns all unit profiles sorted by identity.
func (s *Store) UnitProfiles() []core.UnitProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.unitProfiles)
	slices.SortStableFunc(out, func(a, b core.UnitProfile) int {
		return strings.Compare(a.UnitProfileID, b.UnitProfileID)
	})
	return out
}

// CombatUnits returns all combat units sorted by identity.
func (s *Store) CombatUnits() []core.CombatUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.combatUnits)
	slices.SortStableFunc(out, func(a, b core.CombatUnit) int {
		return strings.Compare(a.UnitID, b.UnitID)
	})
	return out
}

// LeaderByID returns the first leader with the given identity.
func (s *Store) LeaderByID(id string) (core.Leader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leaders {
		if l.LeaderID == id {
			return l, true
		}
	}
	return core.Leader{}, false
}

// WeaponProfileByID returns the first weapon system profile with the given
// identity.
func (s *Store) WeaponProfileByID(id string) (core.WeaponSystemProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.weaponProfiles {
		if p.WeaponSystemID == id {
			return p, true
		}
	}
	return core.WeaponSystemProfile{}, false
}

// UnitProfileByID returns the first unit profile with the given identity.
func (s *Store) UnitProfileByID(id string) (core.UnitProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.unitProfiles {
		if p.UnitProfileID == id {
			return p, true
		}
	}
	return core.UnitProfile{}, false
}

// CombatUnitByID returns the first combat unit with the given identity.
func (s *Store) CombatUnitByID(id string) (core.CombatUnit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.combatUnits {
		if u.UnitID == id {
			return u, true
		}
	}
	return core.CombatUnit{}, false
}
