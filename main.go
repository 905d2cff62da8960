package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"scooper/internal/config"
	"scooper/internal/discovery"
	"scooper/internal/eventbus"
	"scooper/internal/logic"
	"scooper/internal/ui"
	"scooper/internal/watcher"
)

func main() {
	// Parse command line arguments
	var (
		scoopDir   string
		configPath string
		logPath    string
		noWatch    bool
	)
	flag.StringVarP(&scoopDir, "dir", "d", "", "Scoop root directory (default $SCOOP or ~/scoop)")
	flag.StringVarP(&configPath, "config", "c", "", "Config file path")
	flag.StringVar(&logPath, "log", "scooper.log", "Log file path")
	flag.BoolVar(&noWatch, "no-watch", false, "Don't rescan when buckets change on disk")
	flag.Parse()

	// If no directory specified, check for remaining args
	if scoopDir == "" && flag.NArg() > 0 {
		scoopDir = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg := loadOrCreateConfig(configSvc)

	if scoopDir == "" {
		scoopDir = cfg.ResolvedScoopDir()
	}
	root, err := filepath.Abs(scoopDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Initialize services; both subscribe to the bus on creation
	store := logic.NewMemoryAppStore(bus)
	discoverySvc := discovery.NewDiscoveryService(bus, root)
	defer discoverySvc.StopScan()

	// Create UI model and program
	uiModel := ui.NewModel(bus, store, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward events to the UI
	teardown := ui.Forward(bus, p)
	defer teardown()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Watch buckets for changes
	if cfg.Watch.Enabled && !noWatch {
		bucketsDir := filepath.Join(root, "buckets")
		w := watcher.New(bucketsDir, bus, watcher.WithDebounce(cfg.Watch.Debounce()))
		if err := w.Start(ctx); err != nil {
			log.Printf("Not watching %s: %v", bucketsDir, err)
		} else {
			defer w.Stop()
		}
	}

	// Start initial scan
	if err := discoverySvc.StartScan(ctx, root); err != nil {
		log.Printf("Initial scan failed: %v", err)
	}

	// Run the UI
	log.Printf("Starting UI for %s", root)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	cancel()
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	cfg, err := configSvc.LoadFromPath(configSvc.Path())
	switch {
	case err == nil:
		log.Printf("Loaded config from %s", configSvc.Path())
		return cfg
	case errors.Is(err, config.ErrNotFound):
		cfg = config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		return cfg
	default:
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
}
