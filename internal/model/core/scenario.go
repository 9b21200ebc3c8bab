// internal/model/core/scenario.go
package core

import "time"

// Scenario holds the metadata of a scenario file: who made it, where it is
// set, and the geographic origin that grid positions are measured from.
type Scenario struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Author          string    `json:"author"`
	Theater         string    `json:"theater"`
	StartTime       time.Time `json:"startTime"`
	OriginLatitude  float64   `json:"originLatitude"`
	OriginLongitude float64   `json:"originLongitude"`
	CreatorVersion  string    `json:"creatorVersion"`
}
