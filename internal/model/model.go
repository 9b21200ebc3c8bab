package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Scenario{},
	&Leader{},
	&WeaponProfile{},
	&UnitProfile{},
	&CombatUnit{},
}

// Scenario is the root record a saved scenario hangs off
type Scenario struct {
	gorm.Model
	Name            string    `json:"name" gorm:"size:200;index:idx_scenario_name"`
	Author          string    `json:"author" gorm:"size:64"`
	Theater         string    `json:"theater" gorm:"size:127"`
	StartTime       time.Time `json:"startTime" gorm:"type:timestamptz"`
	OriginLatitude  float64   `json:"originLatitude"`
	OriginLongitude float64   `json:"originLongitude"`
	CreatorVersion  string    `json:"creatorVersion" gorm:"size:64;default:1.0.0"`

	Leaders        []Leader
	WeaponProfiles []WeaponProfile
	UnitProfiles   []UnitProfile
	CombatUnits    []CombatUnit
}

func (*Scenario) TableName() string {
	return "scenarios"
}

// GetOrInsert looks a scenario up by name and inserts it when absent.
func (s *Scenario) GetOrInsert(db *gorm.DB) (created bool, err error) {
	var existing Scenario
	err = db.Where("name = ?", s.Name).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = db.Create(s).Error
			return true, err
		}
		return false, err
	}
	*s = existing
	return false, nil
}

// Leader is a commander record
type Leader struct {
	ID         uint     `json:"id" gorm:"primarykey;autoIncrement"`
	ScenarioID uint     `json:"scenarioId" gorm:"index:idx_leader_scenario_id"`
	Scenario   Scenario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ScenarioID;"`

	LeaderID         string `json:"leaderId" gorm:"size:64;index:idx_leader_leader_id"`
	Name             string `json:"name" gorm:"size:64"`
	Side             string `json:"side" gorm:"size:16"`
	Nationality      string `json:"nationality" gorm:"size:32"`
	CommandGrade     string `json:"commandGrade" gorm:"size:16"`
	CombatCommand    string `json:"combatCommand" gorm:"size:16"`
	ReputationPoints int    `json:"reputationPoints"`
	IsAssigned       bool   `json:"isAssigned" gorm:"default:false"`
	UnitID           string `json:"unitId" gorm:"size:64"`
}

func (*Leader) TableName() string {
	return "leaders"
}

// WeaponProfile is a weapon system profile record
type WeaponProfile struct {
	ID         uint     `json:"id" gorm:"primarykey;autoIncrement"`
	ScenarioID uint     `json:"scenarioId" gorm:"index:idx_weaponprofile_scenario_id"`
	Scenario   Scenario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ScenarioID;"`

	WeaponSystemID string `json:"weaponSystemId" gorm:"size:64;index:idx_weaponprofile_system_id"`
	Name           string `json:"name" gorm:"size:64"`
	Nationality    string `json:"nationality" gorm:"size:32"`
	WeaponSystem   string `json:"weaponSystem" gorm:"size:32"`

	PrimaryRange     float64 `json:"primaryRange"`
	IndirectRange    float64 `json:"indirectRange"`
	SpottingRange    float64 `json:"spottingRange"`
	MovementModifier float64 `json:"movementModifier" gorm:"default:1.0"`

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

func (*WeaponProfile) TableName() string {
	return "weapon_profiles"
}

// UnitProfile is an equipment roster record. Equipment is a JSON object of
// weapon system category name to quantity.
type UnitProfile struct {
	ID         uint     `json:"id" gorm:"primarykey;autoIncrement"`
	ScenarioID uint     `json:"scenarioId" gorm:"index:idx_unitprofile_scenario_id"`
	Scenario   Scenario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ScenarioID;"`

	UnitProfileID string         `json:"unitProfileId" gorm:"size:64;index:idx_unitprofile_profile_id"`
	Name          string         `json:"name" gorm:"size:64"`
	Nationality   string         `json:"nationality" gorm:"size:32"`
	Equipment     datatypes.JSON `json:"equipment" gorm:"type:jsonb;default:'{}'"`
}

func (*UnitProfile) TableName() string {
	return "unit_profiles"
}

// CombatUnit is a maneuver unit record. Profile and leader references are
// stored as their string identities; empty string means no reference.
type CombatUnit struct {
	ID         uint     `json:"id" gorm:"primarykey;autoIncrement"`
	ScenarioID uint     `json:"scenarioId" gorm:"index:idx_combatunit_scenario_id"`
	Scenario   Scenario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ScenarioID;"`

	UnitID         string `json:"unitId" gorm:"size:64;index:idx_combatunit_unit_id"`
	UnitName       string `json:"unitName" gorm:"size:64"`
	UnitType       string `json:"unitType" gorm:"size:32"`
	Classification string `json:"classification" gorm:"size:32"`
	Role           string `json:"role" gorm:"size:32"`
	Side           string `json:"side" gorm:"size:16"`
	Nationality    string `json:"nationality" gorm:"size:32"`

	Experience  string `json:"experience" gorm:"size:32"`
	Efficiency  string `json:"efficiency" gorm:"size:32"`
	CombatState string `json:"combatState" gorm:"size:32"`
	IsMounted   bool   `json:"isMounted" gorm:"default:false"`

	DeployedProfileID   string `json:"deployedProfileId" gorm:"size:64"`
	MountedProfileID    string `json:"mountedProfileId" gorm:"size:64"`
	UnitProfileID       string `json:"unitProfileId" gorm:"size:64"`
	CommandingOfficerID string `json:"commandingOfficerId" gorm:"size:64"`

	HitPoints     int `json:"hitPoints"`
	HitPointsMax  int `json:"hitPointsMax"`
	DaysSupply    int `json:"daysSupply"`
	DaysSupplyMax int `json:"daysSupplyMax"`

	PositionX float64 `json:"positionX"` // km east of scenario origin
	PositionY float64 `json:"positionY"` // km north of scenario origin
}

func (*CombatUnit) TableName() string {
	return "combat_units"
}
