package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/config"
	"github.com/KirkDiggler/rpg-inventory/internal/logger"
	"github.com/KirkDiggler/rpg-inventory/internal/metrics"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
)

// itemIDPrefix prefixes generated item IDs
const itemIDPrefix = "item"

// rootOptions holds the persistent flags; set flags override config
type rootOptions struct {
	file        string
	envFile     string
	logLevel    string
	logFormat   string
	metricsFile string
}

// app is the wired CLI shared by every subcommand
type app struct {
	opts      rootOptions
	cfg       *config.Config
	service   inventory.Service
	collector *metrics.EventMetricsCollector
}

func (a *app) setup(cmd *cobra.Command) error {
	var envFiles []string
	if a.opts.envFile != "" {
		envFiles = append(envFiles, a.opts.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if a.opts.file != "" {
		cfg.InventoryFile = a.opts.file
	}
	if a.opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.opts.logLevel)
	}
	if a.opts.logFormat != "" {
		cfg.LogFormat = strings.ToLower(a.opts.logFormat)
	}
	if a.opts.metricsFile != "" {
		cfg.MetricsFile = a.opts.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Setup(cfg.Logger(), cmd.ErrOrStderr())

	repo, err := inventoryrepo.NewFile(&inventoryrepo.FileConfig{})
	if err != nil {
		return err
	}

	bus := events.NewBus()
	collector := metrics.NewEventMetricsCollector()
	collector.Register(bus)

	service, err := inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: repo,
		IDGenerator:   idgen.NewUUID(itemIDPrefix),
		EventBus:      bus,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.service = service
	a.collector = collector
	return nil
}

// flushMetrics writes this run's counters when a metrics file is configured
func (a *app) flushMetrics(_ context.Context) error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.collector.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return err
	}
	slog.Debug("Metrics written", "path", a.cfg.MetricsFile)
	return nil
}

// path returns the inventory file every command operates on
func (a *app) path() string {
	return a.cfg.InventoryFile
}
