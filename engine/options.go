package engine

import (
	"go.uber.org/zap"

	"github.com/tickgraph/tickgraph/cycle"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultArenaCapacity is the backing buffer size for a new Engine
	// when no WithArenaCapacity option is given.
	DefaultArenaCapacity uint64 = 1 << 22

	// DefaultTripleCapacity and DefaultNodeCapacity are rounded up to
	// the next power of two >= 16 in gatherOptions.
	DefaultTripleCapacity = 4096
	DefaultNodeCapacity   = 1024

	// DefaultMaxEntities is sized for the smallest build; larger
	// deployments should raise it with WithMaxEntities.
	DefaultMaxEntities = 64

	// Budgets, in cycles. Ask's is the contract's named target; add
	// and validate get a small multiple of it to account for the
	// extra hash-chain and adjacency-growth work on their paths.
	DefaultAskBudget      uint64 = 7
	DefaultAddBudget      uint64 = 64
	DefaultValidateBudget uint64 = 256
)

// DefaultOverrunPolicy is SoftReport: callers see both the computed
// result and a CycleBudgetError, and decide for themselves whether an
// overrun is fatal. This choice is documented at construction time;
// WithHardFailOnOverrun switches it.
const DefaultOverrunPolicy = cycle.SoftReport

// ---------- Option type ----------

// Option mutates a Config during New. Safe to apply repeatedly.
type Option func(*Config)

// Config is the fully-resolved construction configuration, built by
// gatherOptions from DefaultX constants plus any supplied Option
// values. Its fields are unexported, so New is the single entry point.
type Config struct {
	arenaCapacity  uint64
	tripleCapacity int
	nodeCapacity   int
	maxEntities    int

	askBudget      cycle.Budget
	addBudget      cycle.Budget
	validateBudget cycle.Budget

	logger *zap.Logger
}

// WithArenaCapacity overrides the backing Arena's byte capacity.
func WithArenaCapacity(bytes uint64) Option {
	return func(c *Config) { c.arenaCapacity = bytes }
}

// WithCapacities overrides the triple and node capacities; both are
// rounded up to the next power of two >= 16 when the Engine is built.
func WithCapacities(tripleCapacity, nodeCapacity int) Option {
	return func(c *Config) {
		c.tripleCapacity = tripleCapacity
		c.nodeCapacity = nodeCapacity
	}
}

// WithMaxEntities overrides the bit-matrix entity-id ceiling.
func WithMaxEntities(maxEntities int) Option {
	return func(c *Config) { c.maxEntities = maxEntities }
}

// WithBudgets overrides the three cycle budgets (in cycles) for
// ask, add, and validate respectively. Zero leaves the corresponding
// default in place.
func WithBudgets(ask, add, validate uint64) Option {
	return func(c *Config) {
		if ask > 0 {
			c.askBudget.Cycles = ask
		}
		if add > 0 {
			c.addBudget.Cycles = add
		}
		if validate > 0 {
			c.validateBudget.Cycles = validate
		}
	}
}

// WithHardFailOnOverrun switches every budget's overrun policy to
// cycle.HardFail: a budget-exceeding call discards its result and
// returns only a CycleBudgetError. The default is SoftReport.
func WithHardFailOnOverrun() Option {
	return func(c *Config) {
		c.askBudget.Policy = cycle.HardFail
		c.addBudget.Policy = cycle.HardFail
		c.validateBudget.Policy = cycle.HardFail
	}
}

// WithLogger attaches a zap logger for budget-overrun and
// materialization diagnostics. The default Engine logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.logger = logger }
}

// gatherOptions resolves defaults, applies user options in order
// (last-writer-wins), and normalizes derived invariants — here, that
// capacities are powers of two no smaller than 16 and that a nil
// logger falls back to zap.NewNop().
func gatherOptions(opts ...Option) Config {
	c := Config{
		arenaCapacity:  DefaultArenaCapacity,
		tripleCapacity: DefaultTripleCapacity,
		nodeCapacity:   DefaultNodeCapacity,
		maxEntities:    DefaultMaxEntities,
		askBudget:      cycle.Budget{Cycles: DefaultAskBudget, Policy: DefaultOverrunPolicy},
		addBudget:      cycle.Budget{Cycles: DefaultAddBudget, Policy: DefaultOverrunPolicy},
		validateBudget: cycle.Budget{Cycles: DefaultValidateBudget, Policy: DefaultOverrunPolicy},
	}
	for _, opt := range opts {
		opt(&c)
	}

	c.tripleCapacity = nextPow2AtLeast16(c.tripleCapacity)
	c.nodeCapacity = nextPow2AtLeast16(c.nodeCapacity)
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

func nextPow2AtLeast16(n int) int {
	p := 16
	for p < n {
		p <<= 1
	}
	return p
}
