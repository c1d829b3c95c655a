package shank

import (
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// Keys under which settings are persisted.
const (
	BestScoreKey = "shank-game-best-score"
	ShankSkinKey = "shank-game-shank-skin"
	AppleSkinKey = "shank-game-apple-skin"
)

// KV is the persistent key-value store that outlives a session.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is an in-process KV used when no database is available.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// LoadBestScore reads the persisted best score. Missing, unreadable or
// malformed values count as 0.
func LoadBestScore(kv KV, logger *log.Logger) int {
	if kv == nil {
		return 0
	}
	logger = orDiscard(logger)
	raw, ok, err := kv.Get(BestScoreKey)
	if err != nil {
		logger.Warn("could not read best score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		logger.Warn("ignoring malformed best score", "value", raw)
		return 0
	}
	return best
}

// SaveBestScore persists the best score. Failures are logged only.
func SaveBestScore(kv KV, logger *log.Logger, score int) {
	if kv == nil {
		return
	}
	logger = orDiscard(logger)
	if err := kv.Set(BestScoreKey, strconv.Itoa(score)); err != nil {
		logger.Warn("could not save best score", "score", score, "error", err)
	}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
