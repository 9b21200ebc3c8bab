package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/scenforge/unitcreator/internal/model"
)

// ParseScenario parses scenario metadata from record fields.
// Fields: [name, author, theater, startTime RFC3339, originLat, originLon]
func (p *Parser) ParseScenario(data []string) (model.Scenario, error) {
	var scenario model.Scenario

	if len(data) < 6 {
		return scenario, fmt.Errorf("scenario record needs 6 fields, got %d", len(data))
	}

	scenario.Name = data[0]
	scenario.Author = data[1]
	scenario.Theater = data[2]

	startTime, err := time.Parse(time.RFC3339, data[3])
	if err != nil {
		return scenario, fmt.Errorf("error parsing scenario start time: %w", err)
	}
	scenario.StartTime = startTime

	scenario.OriginLatitude, err = strconv.ParseFloat(data[4], 64)
	if err != nil {
		return scenario, fmt.Errorf("error parsing origin latitude: %w", err)
	}
	scenario.OriginLongitude, err = strconv.ParseFloat(data[5], 64)
	if err != nil {
		return scenario, fmt.Errorf("error parsing origin longitude: %w", err)
	}

	scenario.CreatorVersion = p.creatorVersion

	p.logger.Debug("Parsed scenario metadata",
		"name", scenario.Name,
		"theater", scenario.Theater)

	return scenario, nil
}
