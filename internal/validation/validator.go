// internal/validation/validator.go
package validation

import (
	"fmt"
	"log/slog"

	"github.com/scenforge/unitcreator/internal/model/core"
)

// Bounds for field validation. Combat ratings and ranges are inclusive on
// both ends.
const (
	MinCombatRating = 0
	MaxCombatRating = 25

	MinRange = 0.0
	MaxRange = 100.0

	MinMovementModifier = 0.1
	MaxMovementModifier = 10.0

	MinLeaderNameLength = 2
	MaxLeaderNameLength = 50

	ReputationWarnLimit        = 10000
	EquipmentQuantityWarnLimit = 10000
)

// Dataset is a read-only view of the scenario the validators run against.
// Callers pass it explicitly; the package holds no dataset state of its own.
// Enumeration order must be stable between calls on an unchanged dataset.
type Dataset interface {
	Leaders() []core.Leader
	WeaponProfiles() []core.WeaponSystemProfile
	UnitProfiles() []core.UnitProfile
	CombatUnits() []core.CombatUnit

	LeaderByID(id string) (core.Leader, bool)
	WeaponProfileByID(id string) (core.WeaponSystemProfile, bool)
	UnitProfileByID(id string) (core.UnitProfile, bool)
	CombatUnitByID(id string) (core.CombatUnit, bool)
}

// Validator runs validation passes. It is stateless between calls and safe
// for concurrent use as long as the dataset passed in is not mutated.
type Validator struct {
	log      *slog.Logger
	failFast bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithFailFast makes ValidateAll stop after the first entity whose checks
// produce an error, instead of validating the whole dataset.
func WithFailFast() Option {
	return func(v *Validator) { v.failFast = true }
}

// New creates a Validator. A nil logger falls back to slog.Default().
func New(log *slog.Logger, opts ...Option) *Validator {
	if log == nil {
		log = slog.Default()
	}
	v := &Validator{log: log}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// recoverInto converts a panic inside a validation pass into a single
// synthetic error on the partial result. Faults never propagate to callers.
func (v *Validator) recoverInto(res *Result, scope string) {
	if r := recover(); r != nil {
		res.AddError(fmt.Sprintf("internal validation fault in %s: %v", scope, r))
		v.log.Error("recovered validation fault",
			"scope", scope,
			"panic", fmt.Sprint(r))
	}
}
