package badgerfx

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Handle opens the database on first use. Commands that never touch storage
// never create the data directory.
type Handle struct {
	config Config
	logger *zapLogger

	mu sync.Mutex
	db *badger.DB
}

func NewHandle(config Config, logger *zap.Logger) *Handle {
	return &Handle{
		config: config,
		logger: newLogger(logger),
	}
}

// DB returns the open database, opening it if needed.
func (h *Handle) DB() (*badger.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}

	opts := h.config.Build().
		WithLogger(h.logger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	h.db = db
	return db, nil
}

// Close closes the database if it was opened.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}

	err := h.db.Close()
	h.db = nil
	if err != nil {
		return fmt.Errorf("failed to close BadgerDB: %w", err)
	}

	return nil
}
