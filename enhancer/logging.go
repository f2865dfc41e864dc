package enhancer

import (
	"time"

	"go.uber.org/zap"

	"github.com/comalice/statestore"
)

// Logging returns an enhancer that logs every dispatch and reducer replacement.
// Successful dispatches are logged at debug level, failures at error level.
// A nil logger disables output.
func Logging(logger *zap.Logger) statestore.Enhancer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return wrap(func(s statestore.Store) statestore.Store {
		return &loggingStore{Store: s, logger: logger}
	})
}

type loggingStore struct {
	statestore.Store
	logger *zap.Logger
}

func (s *loggingStore) Dispatch(action any) (statestore.Action, error) {
	start := time.Now()
	a, err := s.Store.Dispatch(action)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Error("dispatch failed",
			zap.String("action_type", actionType(action)),
			zap.Duration("elapsed", elapsed),
			zap.String("code", string(statestore.CodeOf(err))),
			zap.Error(err),
		)
		return a, err
	}
	s.logger.Debug("action dispatched",
		zap.String("action_type", a.Type),
		zap.Duration("elapsed", elapsed),
	)
	return a, nil
}

func (s *loggingStore) ReplaceReducer(next statestore.Reducer) error {
	if err := s.Store.ReplaceReducer(next); err != nil {
		s.logger.Error("reducer replacement failed", zap.Error(err))
		return err
	}
	s.logger.Info("reducer replaced")
	return nil
}
