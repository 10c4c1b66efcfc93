package app

import (
	"github.com/tendermint/tendermint/libs/log"
)

// Default values used by Initialize.
const (
	DefaultInitialBalance = 1000
	DefaultName           = "MyPSP34"
	DefaultSymbol         = "MPSP"
)

type config struct {
	logger         log.Logger
	initialBalance uint64
	name           string
	symbol         string
	debug          bool
}

func defaultConfig() config {
	return config{
		logger:         log.NewNopLogger(),
		initialBalance: DefaultInitialBalance,
		name:           DefaultName,
		symbol:         DefaultSymbol,
	}
}

// Option configures a Ledger.
type Option func(*config)

// WithLogger sets the logger used to report every operation.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithInitialBalance sets the balance credited to the principal by
// Initialize.
func WithInitialBalance(amount uint64) Option {
	return func(c *config) {
		c.initialBalance = amount
	}
}

// WithCollection sets the collection name and symbol written by Initialize.
func WithCollection(name, symbol string) Option {
	return func(c *config) {
		c.name = name
		c.symbol = symbol
	}
}

// WithDebug controls how failures are logged. In debug mode the full error
// with its stack trace is logged. Otherwise errors that carry no code are
// logged as a generic internal error.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}
