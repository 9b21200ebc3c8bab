package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"

	"github.com/scenforge/unitcreator/internal/model/core"
)

// GEO POINTS
// Unit positions are stored as kilometer offsets east/north of the scenario
// origin. For export to mapping tools we project them into Web Mercator
// (EPSG:3857), anchored at the origin's WGS84 (EPSG:4326) coordinates.

const (
	// kmPerDegreeLat is the mean ground distance of one degree of latitude.
	kmPerDegreeLat = 110.574
	// kmPerDegreeLonEquator is the ground distance of one degree of
	// longitude at the equator; scale by cos(lat) elsewhere.
	kmPerDegreeLonEquator = 111.320
)

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// GridFromString parses a string in the format "x,y" (kilometers east and
// north of the scenario origin) into a GridPosition.
func GridFromString(coords string) (core.GridPosition, error) {
	coordsSplit := strings.Split(coords, ",")
	if len(coordsSplit) < 2 {
		return core.GridPosition{}, ErrInvalidCoordinates
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[0]), 64)
	if err != nil {
		return core.GridPosition{}, ErrInvalidCoordinates
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[1]), 64)
	if err != nil {
		return core.GridPosition{}, ErrInvalidCoordinates
	}
	return core.GridPosition{X: x, Y: y}, nil
}

// Coords3857From4326 creates a Web Mercator point from a longitude and latitude
func Coords3857From4326(
	longitude float64,
	latitude float64,
) (
	point geom.Point,
	err error,
) {
	var x, y float64
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	x, y, _ = f(longitude, latitude, 0)
	point = geom.NewPoint(
		geom.Coordinates{
			XY: geom.XY{X: x, Y: y},
			Z:  0,
		},
	)
	return point, nil
}

// Point3857FromGrid projects a grid position into EPSG:3857, anchored at the
// scenario origin. Web Mercator stretches ground distance by 1/cos(lat), so
// the kilometer offsets are scaled by the mercator factor at the origin
// latitude before being added to the projected origin.
func Point3857FromGrid(
	originLongitude float64,
	originLatitude float64,
	pos core.GridPosition,
) (
	point geom.Point,
	err error,
) {
	if originLatitude <= -90 || originLatitude >= 90 {
		return geom.Point{}, ErrInvalidCoordinates
	}
	origin, err := Coords3857From4326(originLongitude, originLatitude)
	if err != nil {
		return geom.Point{}, err
	}
	coords, ok := origin.Coordinates()
	if !ok {
		return geom.Point{}, ErrInvalidCoordinates
	}
	scale := 1 / math.Cos(originLatitude*math.Pi/180)
	point = geom.NewPoint(
		geom.Coordinates{
			XY: geom.XY{
				X: coords.X + pos.X*1000*scale,
				Y: coords.Y + pos.Y*1000*scale,
			},
			Z: 0,
		},
	)
	return point, nil
}

// LatLonFromGrid converts a grid position into approximate WGS84 latitude
// and longitude using an equirectangular projection around the origin.
// Accurate to well under a meter at scenario scale (a few hundred km).
func LatLonFromGrid(
	originLatitude float64,
	originLongitude float64,
	pos core.GridPosition,
) (
	latitude float64,
	longitude float64,
	err error,
) {
	if originLatitude <= -90 || originLatitude >= 90 {
		return 0, 0, ErrInvalidCoordinates
	}
	latitude = originLatitude + pos.Y/kmPerDegreeLat
	kmPerDegreeLon := kmPerDegreeLonEquator * math.Cos(originLatitude*math.Pi/180)
	longitude = originLongitude + pos.X/kmPerDegreeLon
	return latitude, longitude, nil
}
