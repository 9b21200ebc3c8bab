package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/scenforge/unitcreator/internal/config"
	"github.com/scenforge/unitcreator/internal/influx"
	"github.com/scenforge/unitcreator/internal/logging"
	intOtel "github.com/scenforge/unitcreator/internal/otel"
	"github.com/scenforge/unitcreator/internal/storage"
	"github.com/scenforge/unitcreator/internal/validation"

	"log/slog"
)

// CurrentVersion can be overridden at build time via ldflags.
var (
	CurrentVersion string = "1.0.0"
	BuildDate      string = "unknown"

	AppName string = "unitcreator"
)

var (
	SessionStartTime time.Time = time.Now()

	LogFilePath string
	LogFile     *os.File

	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	// OTelProvider handles OpenTelemetry
	OTelProvider *intOtel.Provider

	// InfluxManager ships metrics, nil when influx is disabled
	InfluxManager *influx.Manager

	storageBackend storage.Backend
	validator      *validation.Validator

	// currentScenarioName is injected into every log record once known
	currentScenarioName string
)

func setup() error {
	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(logging.Options{Level: viper.GetString("logLevel")})
	Logger = SlogManager.Logger()

	if err := config.Load("."); err != nil {
		Logger.Warn("Failed to load config, using defaults!", "error", err)
	} else {
		Logger.Info("Loaded config")
	}

	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	LogFilePath = logging.LogFilePath(logsDir, AppName, SessionStartTime)
	var err error
	LogFile, err = os.OpenFile(LogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}

	// OTel provider, enabled via config
	otelCfg := config.GetOTelConfig()
	if otelCfg.Enabled {
		OTelProvider, err = intOtel.New(intOtel.ConfigFrom(otelCfg, LogFile))
		if err != nil {
			Logger.Error("Failed to initialize OTel provider", "error", err)
		}
	}

	var otelLogProvider *sdklog.LoggerProvider
	if OTelProvider != nil {
		otelLogProvider = OTelProvider.LoggerProvider()
	}

	// Graylog shipping, enabled via config
	var graylogWriter *gelf.Writer
	if viper.GetBool("graylog.enabled") {
		graylogWriter, err = gelf.NewWriter(viper.GetString("graylog.address"))
		if err != nil {
			Logger.Error("Failed to connect to Graylog", "error", err)
			graylogWriter = nil
		}
	}

	// Re-setup logging with file output and the optional destinations
	SlogManager.Setup(logging.Options{
		File:         LogFile,
		Level:        viper.GetString("logLevel"),
		OTelProvider: otelLogProvider,
		Graylog:      graylogWriter,
		Context: func() []slog.Attr {
			if currentScenarioName == "" {
				return nil
			}
			return []slog.Attr{slog.String("scenario", currentScenarioName)}
		},
	})
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", LogFilePath)

	dbLog := zerolog.New(LogFile).With().Timestamp().Logger()

	if viper.GetBool("influx.enabled") {
		backupPath := logging.LogFilePath(logsDir, AppName+".influx_backup", SessionStartTime) + ".gz"
		InfluxManager = influx.NewManager(dbLog, backupPath)
		if err := InfluxManager.Connect(); err != nil {
			Logger.Warn("InfluxDB metrics unavailable", "error", err)
			InfluxManager = nil
		}
	}

	storageCfg := config.GetStorageConfig()
	storageBackend, err = storage.NewBackend(storageCfg, Logger, dbLog)
	if err != nil {
		return fmt.Errorf("creating storage backend: %w", err)
	}
	if err := storageBackend.Init(); err != nil {
		return fmt.Errorf("initializing storage backend: %w", err)
	}
	Logger.Info("Storage backend initialized", "type", storageCfg.Type)

	var opts []validation.Option
	if config.GetValidationConfig().FailFast {
		opts = append(opts, validation.WithFailFast())
	}
	validator = validation.New(Logger, opts...)

	return nil
}

func cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if storageBackend != nil {
		if err := storageBackend.Close(); err != nil {
			Logger.Error("Failed to close storage backend", "error", err)
		}
	}
	if InfluxManager != nil {
		InfluxManager.Close()
	}
	if err := SlogManager.Flush(ctx); err != nil {
		Logger.Warn("Failed to flush logs", "error", err)
	}
	if OTelProvider != nil {
		if err := OTelProvider.Shutdown(ctx); err != nil {
			Logger.Warn("Failed to shut down OTel provider", "error", err)
		}
	}
	if LogFile != nil {
		LogFile.Close()
	}
}

func usage() {
	fmt.Println("Usage: unitcreator <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  import <file>...                            parse definition files, validate, and save the scenario")
	fmt.Println("  validate <scenario>                         run all validation passes against a saved scenario")
	fmt.Println("  export <scenario>                           validate and export a saved scenario as JSON")
	fmt.Println("  candelete <leader|weapon|unitprofile> <scenario> <id>")
	fmt.Println("                                              check whether an entity can be deleted safely")
	fmt.Println("  show <scenario>                             print entity counts for a saved scenario")
	fmt.Println("  seed                                        save the built-in demo scenario")
	fmt.Println("  list                                        list all saved scenarios")
	fmt.Println("  version                                     print version information")
}

func main() {
	if err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "import":
		if len(args) < 2 {
			err = fmt.Errorf("import needs at least one definition file")
			break
		}
		err = runImport(args[1:])
	case "validate":
		if len(args) != 2 {
			err = fmt.Errorf("validate needs a scenario name")
			break
		}
		err = runValidate(args[1])
	case "export":
		if len(args) != 2 {
			err = fmt.Errorf("export needs a scenario name")
			break
		}
		err = runExport(args[1])
	case "candelete":
		if len(args) != 4 {
			err = fmt.Errorf("candelete needs a kind, a scenario name, and an entity id")
			break
		}
		err = runCanDelete(args[1], args[2], args[3])
	case "show":
		if len(args) != 2 {
			err = fmt.Errorf("show needs a scenario name")
			break
		}
		err = runShow(args[1])
	case "seed":
		err = runSeed()
	case "list":
		err = runList()
	case "version":
		fmt.Printf("%s %s (built %s)\n", AppName, CurrentVersion, BuildDate)
	default:
		usage()
		err = fmt.Errorf("unknown command: %s", args[0])
	}

	if err != nil {
		Logger.Error("Command failed", "command", args[0], "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cleanup()
		os.Exit(1)
	}
}
