package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"termviz/internal/config"
	"termviz/internal/dataset"
	"termviz/internal/events"
	"termviz/internal/logging"
	"termviz/internal/resize"
	"termviz/internal/selection"
	"termviz/internal/ui"
)

func main() {
	var configPath string
	var logLevel string
	var headless bool
	flag.StringVar(&configPath, "config", "", "Path to the configuration file")
	flag.StringVar(&configPath, "c", "", "Path to the configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&headless, "headless", false, "Run without the dashboard, logging notifications only")
	flag.Parse()

	closeLog, err := logging.Setup("termviz.log", logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Application bus for config and dataset notifications
	bus := events.NewBus()

	configSvc := config.NewServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	// The selector audits its own mutations through the bulk-subscription
	// constructor; the dashboard wires its own handlers on top later.
	selector := selection.NewWithEvents[*dataset.Series]("series", selection.ParseMode(cfg.SelectionMode), events.SubscriptionMap{
		selection.EventAdd: func(payload any) {
			log.Debug().Str("series", seriesName(payload)).Msg("series selected")
		},
		selection.EventRemove: func(payload any) {
			log.Debug().Str("series", seriesName(payload)).Msg("series unselected")
		},
		selection.EventEmpty: func(any) {
			log.Debug().Msg("selection cleared")
		},
	})

	loader := dataset.NewLoader(bus)

	if headless {
		runHeadless(ctx, cancel, bus, loader, cfg)
		return
	}

	// Bridge the TUI runtime's resize signal into the notifier; the
	// dashboard fires the hook, subscribers stay decoupled from Bubble Tea.
	hook := resize.NewHook()
	notifier := resize.NewNotifier(hook)
	notifier.Subscribe(resize.EventResize, func(any) {
		log.Debug().Msg("viewport resized")
	})

	eventLog := ui.NewEventLog(200)
	model := ui.NewModel(cfg, selector, notifier, hook, eventLog)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward bus notifications to the UI
	eventChan := make(chan ui.EventMsg, 100)
	forward := func(name string) func(any) {
		return func(payload any) {
			select {
			case eventChan <- ui.EventMsg{Name: name, Payload: payload}:
			default:
				log.Warn().Str("event", name).Msg("event channel full, dropping event")
			}
		}
	}
	bus.Subscribe(dataset.EventLoadStarted, forward(dataset.EventLoadStarted))
	bus.Subscribe(dataset.EventSeriesAdded, forward(dataset.EventSeriesAdded))
	bus.Subscribe(dataset.EventLoadCompleted, forward(dataset.EventLoadCompleted))
	bus.Subscribe(config.EventSaved, forward(config.EventSaved))

	go func() {
		for msg := range eventChan {
			p.Send(msg)
		}
	}()

	// Generate the configured series in the background
	if err := loader.StartLoad(ctx, cfg.Series); err != nil {
		log.Error().Err(err).Msg("failed to start load")
	}

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("error running program")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	loader.StopLoad()
	close(eventChan)
}

// runHeadless watches the real terminal resize signal and logs every
// notification until interrupted. It exercises the SIGWINCH source end to
// end without the dashboard.
func runHeadless(ctx context.Context, cancel context.CancelFunc, bus *events.Bus, loader dataset.Loader, cfg *config.Config) {
	source := resize.NewSignalSource()
	resizes := 0
	resize.NewNotifierWithEvents(source, events.SubscriptionMap{
		resize.EventResize: func(any) {
			resizes++
			log.Info().Int("count", resizes).Msg("viewport resized")
		},
	})
	source.Start(ctx)

	bus.Subscribe(dataset.EventSeriesAdded, func(payload any) {
		if e, ok := payload.(dataset.SeriesAddedEvent); ok {
			log.Info().Str("series", e.Series.Name).Int("points", len(e.Series.Points)).Msg("series added")
		}
	})
	bus.Subscribe(dataset.EventLoadCompleted, func(payload any) {
		if e, ok := payload.(dataset.LoadCompletedEvent); ok {
			log.Info().Int("count", e.Count).Msg("load completed")
		}
	})

	if err := loader.StartLoad(ctx, cfg.Series); err != nil {
		log.Error().Err(err).Msg("failed to start load")
	}

	fmt.Println("termviz headless: resize the terminal to generate notifications, Ctrl+C to exit")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	cancel()
	loader.StopLoad()
}

// loadOrCreateConfig loads config from the given path, or the default
// location when none is given, writing defaults when nothing exists yet.
func loadOrCreateConfig(configSvc config.Service, path string) *config.Config {
	if path == "" {
		cfg, err := configSvc.Load()
		if err != nil {
			log.Warn().Err(err).Msg("failed to load config, using defaults")
			return config.DefaultConfig()
		}
		return cfg
	}

	if cfg, err := configSvc.LoadFromPath(path); err == nil {
		log.Info().Str("path", path).Msg("loaded config")
		return cfg
	}

	log.Info().Str("path", path).Msg("creating new config")
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Warn().Err(err).Msg("failed to save config")
	}
	return cfg
}

func seriesName(payload any) string {
	if s, ok := payload.(*dataset.Series); ok && s != nil {
		return s.Name
	}
	return ""
}
