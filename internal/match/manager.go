package match

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/dice"
)

// Manager tracks all live matches, keyed by match ID. All methods are safe
// for concurrent use; per-match state is guarded by each Match's own lock.
type Manager struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	matches map[string]*Match
}

// NewManager creates an empty match Manager.
//
// Precondition: logger must be non-nil.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		panic("match: NewManager requires a non-nil logger")
	}
	return &Manager{
		logger:  logger,
		matches: make(map[string]*Match),
	}
}

// Create starts a non-replayable match drawing from crypto randomness.
// Draws are logged at debug level for post-match auditing.
func (mgr *Manager) Create(cfg Config) *Match {
	src := dice.NewLoggedSource(dice.NewCryptoSource(), mgr.logger)
	return mgr.register(New(cfg, src, mgr.logger))
}

// CreateSeeded starts a deterministic match: the same seed and the same
// ordered calls reproduce the same outcomes.
func (mgr *Manager) CreateSeeded(cfg Config, seed int64) *Match {
	src := dice.NewLoggedSource(dice.NewSeededSource(seed), mgr.logger)
	return mgr.register(New(cfg, src, mgr.logger))
}

func (mgr *Manager) register(m *Match) *Match {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.matches[m.ID()] = m
	mgr.logger.Info("match created", zap.String("match_id", m.ID()))
	return m
}

// Get returns the live match with the given ID.
func (mgr *Manager) Get(id string) (*Match, bool) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	m, ok := mgr.matches[id]
	return m, ok
}

// End removes the match record.
//
// Postcondition: Get(id) returns false. Ending an unknown match is an error.
func (mgr *Manager) End(id string) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	if _, ok := mgr.matches[id]; !ok {
		return fmt.Errorf("match %q not found", id)
	}
	delete(mgr.matches, id)
	mgr.logger.Info("match ended", zap.String("match_id", id))
	return nil
}

// Count returns the number of live matches.
func (mgr *Manager) Count() int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return len(mgr.matches)
}
