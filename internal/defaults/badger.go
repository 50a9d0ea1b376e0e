package defaults

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarycd/gg/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const keyRootDir = "defaults:root_dir"

// BadgerStore keeps the default directory in BadgerDB.
type BadgerStore struct {
	handle *badgerfx.Handle

	logger *zap.Logger
}

func NewBadgerStore(handle *badgerfx.Handle, logger *zap.Logger) *BadgerStore {
	return &BadgerStore{
		handle: handle,
		logger: logger,
	}
}

func (s *BadgerStore) Get(_ context.Context) (string, error) {
	db, err := s.handle.DB()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	var dir string
	err = db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(keyRootDir))
		if errors.Is(getErr, badger.ErrKeyNotFound) {
			return ErrNoDefault
		}
		if getErr != nil {
			return fmt.Errorf("%w: %w", ErrStoreFailed, getErr)
		}

		value, valErr := item.ValueCopy(nil)
		if valErr != nil {
			return fmt.Errorf("%w: %w", ErrStoreFailed, valErr)
		}

		dir = string(value)
		return nil
	})
	if err != nil {
		return "", err
	}

	if dir == "" {
		return "", ErrNoDefault
	}

	return dir, nil
}

func (s *BadgerStore) Set(_ context.Context, path string) error {
	db, err := s.handle.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyRootDir), []byte(path))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	s.logger.Debug("default directory stored", zap.String("path", path))

	return nil
}

var _ Store = (*BadgerStore)(nil)
