// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all components, making the
// dependency graph explicit and testable.
package container

import (
	"fmt"

	"fjacquet/finledger/internal/categorizer"
	"fjacquet/finledger/internal/config"
	"fjacquet/finledger/internal/exporter"
	"fjacquet/finledger/internal/goals"
	"fjacquet/finledger/internal/ledger"
	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getters only.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	rules    *categorizer.Rules
	ledger   *ledger.Ledger
	goals    *goals.Manager
	store    *store.LedgerStore
	exporter *exporter.Exporter
}

// NewContainer wires all application dependencies and loads persisted
// state. Startup always succeeds on missing or corrupt data files; the
// collections just start empty.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	categoryStore := store.NewCategoryStore(cfg.Data.CategoriesFile, logger)
	rules := categorizer.NewRules(categoryStore, logger)

	ledgerStore := store.NewLedgerStore(cfg.Data.LedgerFile, cfg.Data.GoalsFile, logger)

	l := ledger.New(rules, logger)
	l.Load(ledgerStore.Load())

	g := goals.NewManager(logger)
	g.Load(ledgerStore.LoadGoals())

	return &Container{
		logger:   logger,
		config:   cfg,
		rules:    rules,
		ledger:   l,
		goals:    g,
		store:    ledgerStore,
		exporter: exporter.New(l, g, logger),
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Rules returns the category rule set.
func (c *Container) Rules() *categorizer.Rules { return c.rules }

// Ledger returns the transaction ledger.
func (c *Container) Ledger() *ledger.Ledger { return c.ledger }

// Goals returns the savings goal manager.
func (c *Container) Goals() *goals.Manager { return c.goals }

// Exporter returns the report exporter.
func (c *Container) Exporter() *exporter.Exporter { return c.exporter }

// SaveLedger persists the full transaction list. Called synchronously
// after every successful mutation.
func (c *Container) SaveLedger() error {
	return c.store.Save(c.ledger.Transactions())
}

// SaveGoals persists the full goal list.
func (c *Container) SaveGoals() error {
	return c.store.SaveGoals(c.goals.List())
}
