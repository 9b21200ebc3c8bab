package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/scenforge/unitcreator/internal/api"
	"github.com/scenforge/unitcreator/internal/config"
	"github.com/scenforge/unitcreator/internal/export"
	"github.com/scenforge/unitcreator/internal/influx"
	"github.com/scenforge/unitcreator/internal/model"
	"github.com/scenforge/unitcreator/internal/model/convert"
	"github.com/scenforge/unitcreator/internal/parser"
	"github.com/scenforge/unitcreator/internal/store"
	"github.com/scenforge/unitcreator/internal/util"
	"github.com/scenforge/unitcreator/internal/validation"
)

// runImport parses pipe-delimited definition files into a scenario,
// validates it, and saves it to the storage backend. A scenario that fails
// validation is not saved.
func runImport(paths []string) error {
	p := parser.NewParser(Logger, CurrentVersion)

	var scenario model.Scenario
	for _, path := range paths {
		if err := importFile(p, path, &scenario); err != nil {
			return err
		}
	}
	if scenario.Name == "" {
		return fmt.Errorf("no SCENARIO record found in input")
	}
	currentScenarioName = scenario.Name

	st := convert.StoreFromScenario(scenario)
	Logger.Info("Parsed definition files",
		"files", len(paths),
		"leaders", len(st.Leaders()),
		"weaponProfiles", len(st.WeaponProfiles()),
		"unitProfiles", len(st.UnitProfiles()),
		"combatUnits", len(st.CombatUnits()))

	start := time.Now()
	res := validator.ValidateAll(st)
	reportResult(res)
	writeValidationPoint(scenario.Name, res, time.Since(start))

	if !res.IsValid() {
		return fmt.Errorf("scenario failed validation with %d error(s), not saving", len(res.Errors))
	}

	if err := storageBackend.SaveScenario(st); err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}
	writeScenarioSizePoint(st)

	fmt.Printf("Imported scenario '%s'\n", scenario.Name)
	return nil
}

// importFile appends all records of one definition file to the scenario.
func importFile(p *parser.Parser, path string, scenario *model.Scenario) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening definition file: %w", err)
	}
	defer f.Close()

	lineNum := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := util.SplitRecord(line)
		kind, data := fields[0], fields[1:]

		var parseErr error
		switch kind {
		case parser.KindScenario:
			var s model.Scenario
			s, parseErr = p.ParseScenario(data)
			if parseErr == nil {
				s.Leaders = scenario.Leaders
				s.WeaponProfiles = scenario.WeaponProfiles
				s.UnitProfiles = scenario.UnitProfiles
				s.CombatUnits = scenario.CombatUnits
				*scenario = s
				p.SetScenario(scenario)
			}
		case parser.KindLeader:
			var l model.Leader
			l, parseErr = p.ParseLeader(data)
			if parseErr == nil {
				scenario.Leaders = append(scenario.Leaders, l)
			}
		case parser.KindWeaponProfile:
			var wp model.WeaponProfile
			wp, parseErr = p.ParseWeaponProfile(data)
			if parseErr == nil {
				scenario.WeaponProfiles = append(scenario.WeaponProfiles, wp)
			}
		case parser.KindUnitProfile:
			var up model.UnitProfile
			up, parseErr = p.ParseUnitProfile(data)
			if parseErr == nil {
				scenario.UnitProfiles = append(scenario.UnitProfiles, up)
			}
		case parser.KindCombatUnit:
			var u model.CombatUnit
			u, parseErr = p.ParseCombatUnit(data)
			if parseErr == nil {
				scenario.CombatUnits = append(scenario.CombatUnits, u)
			}
		default:
			parseErr = fmt.Errorf("unknown record kind %q", kind)
		}
		if parseErr != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, parseErr)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading definition file: %w", err)
	}
	return nil
}

// runValidate loads a saved scenario and runs all validation passes.
func runValidate(name string) error {
	st, err := loadStore(name)
	if err != nil {
		return err
	}

	start := time.Now()
	res := validator.ValidateAll(st)
	duration := time.Since(start)
	reportResult(res)
	writeValidationPoint(name, res, duration)

	if !res.IsValid() {
		return fmt.Errorf("scenario '%s' failed validation with %d error(s)", name, len(res.Errors))
	}
	fmt.Printf("Scenario '%s' is valid\n", name)
	return nil
}

// runExport loads a saved scenario and writes it to the export directory.
// Validation errors block the export; warnings do not.
func runExport(name string) error {
	st, err := loadStore(name)
	if err != nil {
		return err
	}

	exporter := export.New(Logger, config.GetExportConfig(), validator)
	path, err := exporter.Export(st)
	if err != nil {
		return err
	}
	fmt.Printf("Exported scenario '%s' to %s\n", name, path)

	if viper.GetBool("api.uploadEnabled") {
		return uploadExport(path, st)
	}
	return nil
}

func uploadExport(path string, st *store.Store) error {
	client := api.New(viper.GetString("api.serverUrl"), viper.GetString("api.apiKey"))
	if err := client.Healthcheck(); err != nil {
		Logger.Warn("Scenario library is offline, skipping upload", "error", err)
		return nil
	}

	meta := st.Metadata()
	err := client.Upload(path, api.UploadMetadata{
		ScenarioName:   meta.Name,
		Theater:        meta.Theater,
		Author:         meta.Author,
		CreatorVersion: meta.CreatorVersion,
	})
	if err != nil {
		return fmt.Errorf("uploading export: %w", err)
	}
	fmt.Printf("Uploaded %s to scenario library\n", path)
	return nil
}

// runCanDelete checks whether removing an entity would leave dangling
// references in a saved scenario.
func runCanDelete(kind, name, id string) error {
	st, err := loadStore(name)
	if err != nil {
		return err
	}

	var res *validation.Result
	switch strings.ToLower(kind) {
	case "leader":
		res = validator.CanDeleteLeader(id, st)
	case "weapon":
		res = validator.CanDeleteWeaponProfile(id, st)
	case "unitprofile":
		res = validator.CanDeleteUnitProfile(id, st)
	default:
		return fmt.Errorf("unknown entity kind %q (want leader, weapon, or unitprofile)", kind)
	}

	reportResult(res)
	if !res.IsValid() {
		return fmt.Errorf("'%s' cannot be deleted", id)
	}
	fmt.Printf("'%s' can be deleted\n", id)
	return nil
}

// runShow prints the metadata and entity counts of a saved scenario.
func runShow(name string) error {
	st, err := loadStore(name)
	if err != nil {
		return err
	}

	meta := st.Metadata()
	fmt.Printf("Scenario:        %s\n", meta.Name)
	fmt.Printf("Author:          %s\n", meta.Author)
	fmt.Printf("Theater:         %s\n", meta.Theater)
	fmt.Printf("Start time:      %s\n", meta.StartTime.Format(time.RFC3339))
	fmt.Printf("Origin:          %.4f, %.4f\n", meta.OriginLatitude, meta.OriginLongitude)
	fmt.Printf("Creator version: %s\n", meta.CreatorVersion)
	fmt.Println()
	fmt.Printf("Leaders:         %d\n", len(st.Leaders()))
	fmt.Printf("Weapon profiles: %d\n", len(st.WeaponProfiles()))
	fmt.Printf("Unit profiles:   %d\n", len(st.UnitProfiles()))
	fmt.Printf("Combat units:    %d\n", len(st.CombatUnits()))
	return nil
}

// runList prints the names of all saved scenarios.
func runList() error {
	names, err := storageBackend.ListScenarios()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No saved scenarios.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func loadStore(name string) (*store.Store, error) {
	st, err := storageBackend.LoadScenario(name)
	if err != nil {
		return nil, err
	}
	currentScenarioName = st.Metadata().Name
	return st, nil
}

func reportResult(res *validation.Result) {
	for _, msg := range res.Errors {
		fmt.Printf("ERROR: %s\n", msg)
	}
	for _, msg := range res.Warnings {
		fmt.Printf("WARNING: %s\n", msg)
	}
}

func writeValidationPoint(name string, res *validation.Result, duration time.Duration) {
	if InfluxManager == nil {
		return
	}
	point := influx.ValidationRunPoint(name, res, duration, config.GetValidationConfig().FailFast)
	if err := InfluxManager.WritePoint(context.Background(), influx.BucketValidationRuns, point); err != nil {
		Logger.Warn("Failed to write validation metrics", "error", err)
	}
}

func writeScenarioSizePoint(st *store.Store) {
	if InfluxManager == nil {
		return
	}
	point := influx.ScenarioSizePoint(st)
	if err := InfluxManager.WritePoint(context.Background(), influx.BucketScenarioData, point); err != nil {
		Logger.Warn("Failed to write scenario metrics", "error", err)
	}
}
