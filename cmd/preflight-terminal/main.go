package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/preflight-terminal/internal/aviationweather"
	"github.com/ngmaloney/preflight-terminal/internal/config"
	"github.com/ngmaloney/preflight-terminal/internal/database"
	"github.com/ngmaloney/preflight-terminal/internal/history"
	"github.com/ngmaloney/preflight-terminal/internal/metar"
	"github.com/ngmaloney/preflight-terminal/internal/profile"
	"github.com/ngmaloney/preflight-terminal/internal/ui"
	"github.com/ngmaloney/preflight-terminal/pkg/logger"
	"gopkg.in/yaml.v3"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	rawMetar := flag.String("metar", "", "Parse a raw METAR, print the result as YAML and exit")
	importPath := flag.String("import-profile", "", "Replace the saved pilot profile with a YAML file")
	exportPath := flag.String("export-profile", "", "Write the saved pilot profile to a YAML file (- for stdout)")
	flag.Parse()

	if *rawMetar != "" {
		if err := printMetar(*rawMetar); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Load configuration with fallback logic
	cfg, err := config.LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting Preflight Terminal",
		logger.String("version", Version),
		logger.String("config_path", *configPath),
		logger.String("data_dir", cfg.Storage.DataDir))

	db, err := database.Open(database.DBPath(cfg.Storage.DataDir))
	if err != nil {
		log.Error("Failed to open database", logger.Error(err))
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	profiles := profile.NewRepository(db, log)

	if *importPath != "" || *exportPath != "" {
		if err := runProfileCommand(profiles, *importPath, *exportPath); err != nil {
			log.Error("Profile command failed", logger.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	m := ui.NewModel(ui.Dependencies{
		Profiles: profiles,
		Weather:  aviationweather.NewAWCClient(cfg.Weather, log),
		History:  history.NewLog(db, log),
		Logger:   log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("Application exited with error", logger.Error(err))
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// printMetar writes the parse of raw to stdout as YAML
func printMetar(raw string) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(metar.Parse(raw)); err != nil {
		return fmt.Errorf("encoding METAR: %w", err)
	}
	return enc.Close()
}

// runProfileCommand imports and then exports the profile, whichever were asked for
func runProfileCommand(store profile.Store, importPath, exportPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if importPath != "" {
		f, err := os.Open(importPath)
		if err != nil {
			return fmt.Errorf("opening profile: %w", err)
		}
		p, err := profile.Import(f)
		f.Close()
		if err != nil {
			return err
		}
		if err := store.Save(ctx, p); err != nil {
			return err
		}
		fmt.Printf("Imported profile for %s\n", p.Greeting())
	}

	if exportPath != "" {
		p, ok := store.Load(ctx)
		if !ok {
			return fmt.Errorf("no saved profile to export")
		}

		if exportPath == "-" {
			return profile.Export(os.Stdout, p)
		}

		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportPath, err)
		}
		defer f.Close()
		if err := profile.Export(f, p); err != nil {
			return err
		}
		fmt.Printf("Exported profile to %s\n", exportPath)
	}

	return nil
}
