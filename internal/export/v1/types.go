// Package v1 contains the v1 export format for scenario data. This format
// is what the scenario web viewer and the wargame engine importer consume.
package v1

// Export is the root JSON structure for the v1 format
type Export struct {
	CreatorVersion  string  `json:"creatorVersion"`
	ScenarioName    string  `json:"scenarioName"`
	ScenarioAuthor  string  `json:"scenarioAuthor"`
	Theater         string  `json:"theater"`
	StartTime       string  `json:"startTime"`
	OriginLatitude  float64 `json:"originLatitude"`
	OriginLongitude float64 `json:"originLongitude"`

	Leaders        []Leader        `json:"leaders"`
	WeaponProfiles []WeaponProfile `json:"weaponProfiles"`
	UnitProfiles   []UnitProfile   `json:"unitProfiles"`
	CombatUnits    []CombatUnit    `json:"combatUnits"`
}

// Leader is a commander entry
type Leader struct {
	LeaderID         string `json:"leaderId"`
	Name             string `json:"name"`
	Side             string `json:"side"`
	Nationality      string `json:"nationality"`
	CommandGrade     string `json:"commandGrade"`
	CombatCommand    string `json:"combatCommand"`
	ReputationPoints int    `json:"reputationPoints"`
	IsAssigned       bool   `json:"isAssigned"`
	UnitID           string `json:"unitId,omitempty"`
}

// WeaponProfile is a weapon system profile entry
type WeaponProfile struct {
	WeaponSystemID   string  `json:"weaponSystemId"`
	Name             string  `json:"name"`
	Nationality      string  `json:"nationality"`
	WeaponSystem     string  `json:"weaponSystem"`
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

// UnitProfile is an equipment roster entry. Equipment maps weapon system
// category name to quantity.
type UnitProfile struct {
	UnitProfileID string         `json:"unitProfileId"`
	Name          string         `json:"name"`
	Nationality   string         `json:"nationality"`
	Equipment     map[string]int `json:"equipment"`
}

// CombatUnit is a maneuver unit entry. Positions are exported three ways:
// the native grid offsets, WGS84 lat/lon, and Web Mercator map coordinates
// for the viewer.
type CombatUnit struct {
	UnitID         string `json:"unitId"`
	UnitName       string `json:"unitName"`
	UnitType       string `json:"unitType"`
	Classification string `json:"classification"`
	Role           string `json:"role"`
	Side           string `json:"side"`
	Nationality    string `json:"nationality"`

	Experience  string `json:"experience"`
	Efficiency  string `json:"efficiency"`
	CombatState string `json:"combatState"`
	IsMounted   bool   `json:"isMounted"`

	DeployedProfileID   string `json:"deployedProfileId,omitempty"`
	MountedProfileID    string `json:"mountedProfileId,omitempty"`
	UnitProfileID       string `json:"unitProfileId,omitempty"`
	CommandingOfficerID string `json:"commandingOfficerId,omitempty"`

	HitPoints     int `json:"hitPoints"`
	HitPointsMax  int `json:"hitPointsMax"`
	DaysSupply    int `json:"daysSupply"`
	DaysSupplyMax int `json:"daysSupplyMax"`

	GridX       float64   `json:"gridX"`
	GridY       float64   `json:"gridY"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	MapPosition []float64 `json:"mapPosition"` // [x, y] in EPSG:3857
}
