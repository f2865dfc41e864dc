// Package enhancer provides store enhancers built on the single statestore.Enhancer hook.
//
// Every enhancer here wraps the Store returned by the next Creator, embedding it and
// overriding Dispatch (and ReplaceReducer where relevant). Combine them with
// statestore.Compose:
//
//	rec := enhancer.NewRecorder(enhancer.WithLimit(50))
//	s, err := statestore.New(reducer, statestore.WithEnhancer(statestore.Compose(
//		enhancer.Logging(logger),
//		enhancer.Tracing(provider),
//		rec.Enhancer(),
//	)))
//
// Logging and Tracing wrap Dispatch and ReplaceReducer, so the ActionTypeInit dispatch
// performed while the store is created is not observed by them. Recorder and
// ChannelPublisher wrap the reducer instead: they see every successful reduction,
// including both INIT dispatches, in the order the store applies them and before
// listeners run.
package enhancer

import "github.com/comalice/statestore"

// wrap builds an Enhancer that decorates the store produced by the next Creator.
func wrap(decorate func(statestore.Store) statestore.Store) statestore.Enhancer {
	return func(next statestore.Creator) statestore.Creator {
		return func(reducer statestore.Reducer, preloaded statestore.State) (statestore.Store, error) {
			s, err := next(reducer, preloaded)
			if err != nil {
				return nil, err
			}
			return decorate(s), nil
		}
	}
}

// observe builds an Enhancer that reports every successful reduction to fn, with
// the state the reducer produced. fn runs before listeners are notified, so actions
// dispatched from listeners are reported after the action that triggered them.
func observe(fn func(statestore.Action, statestore.State)) statestore.Enhancer {
	return func(next statestore.Creator) statestore.Creator {
		return func(reducer statestore.Reducer, preloaded statestore.State) (statestore.Store, error) {
			if reducer == nil {
				return next(nil, preloaded)
			}
			s, err := next(observed(reducer, fn), preloaded)
			if err != nil {
				return nil, err
			}
			return &observingStore{Store: s, fn: fn}, nil
		}
	}
}

func observed(reducer statestore.Reducer, fn func(statestore.Action, statestore.State)) statestore.Reducer {
	return func(state statestore.State, action statestore.Action) (statestore.State, error) {
		next, err := reducer(state, action)
		if err != nil {
			return next, err
		}
		fn(action, next)
		return next, nil
	}
}

// observingStore keeps replacement reducers observed.
type observingStore struct {
	statestore.Store
	fn func(statestore.Action, statestore.State)
}

func (s *observingStore) ReplaceReducer(next statestore.Reducer) error {
	if next == nil {
		return s.Store.ReplaceReducer(nil)
	}
	return s.Store.ReplaceReducer(observed(next, s.fn))
}

// actionType extracts a best-effort action type from a value passed to Dispatch,
// for use before the store has validated it.
func actionType(v any) string {
	switch a := v.(type) {
	case statestore.Action:
		return a.Type
	case *statestore.Action:
		if a != nil {
			return a.Type
		}
	case map[string]any:
		if t, ok := a["type"].(string); ok {
			return t
		}
	}
	return ""
}
