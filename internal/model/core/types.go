// internal/model/core/types.go
package core

// GridPosition is a scenario map coordinate in kilometers east/north of the
// scenario origin, without GIS dependencies.
type GridPosition struct {
	X float64 `json:"x"` // easting
	Y float64 `json:"y"` // northing
}

// StatPair is a bounded counter with a current value and its maximum.
type StatPair struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// RatingName/Rating pair a combat rating's display name with its value so
// callers can iterate all ratings of a profile uniformly.
type Rating struct {
	Name  string
	Value int
}
