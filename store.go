package statestore

import (
	"fmt"
	"slices"
)

// Store holds the current state and runs dispatched actions through the reducer.
type Store interface {
	// Dispatch validates action, applies the current reducer and then notifies
	// listeners. It returns the dispatched action.
	Dispatch(action any) (Action, error)

	// GetState returns the current state.
	GetState() State

	// Subscribe registers listener and returns a function removing that registration.
	Subscribe(listener Listener) (Unsubscribe, error)

	// ReplaceReducer swaps the reducer and re-initializes state by dispatching
	// ActionTypeInit.
	ReplaceReducer(next Reducer) error
}

// subscription is one listener registration.
type subscription struct {
	fn Listener
}

// store is the Store built by New.
type store struct {
	reducer Reducer
	state   State

	// current is the snapshot notified by the last dispatch and is never modified.
	// next receives subscribe/unsubscribe and is forked from current on the first
	// change after a dispatch.
	current []*subscription
	next    []*subscription
	shared  bool

	dispatching bool
}

// New creates a Store that runs reducer, dispatching ActionTypeInit before it returns.
func New(reducer Reducer, opts ...Option) (Store, error) {
	o := resolveOptions(opts)
	if o.hasEnhancer {
		if o.enhancer == nil {
			return nil, ErrInvalidEnhancer
		}
		create := o.enhancer(createStore)
		if create == nil {
			return nil, fmt.Errorf("%w: enhancer returned a nil creator", ErrInvalidEnhancer)
		}
		return create(reducer, o.preloaded)
	}
	return createStore(reducer, o.preloaded)
}

// createStore is the unenhanced Creator handed to enhancers.
func createStore(reducer Reducer, preloaded State) (Store, error) {
	if reducer == nil {
		return nil, ErrInvalidReducer
	}

	s := &store{
		reducer: reducer,
		state:   preloaded,
		shared:  true,
	}
	if _, err := s.Dispatch(Action{Type: ActionTypeInit}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *store) GetState() State {
	return s.state
}

func (s *store) Subscribe(listener Listener) (Unsubscribe, error) {
	if listener == nil {
		return nil, ErrInvalidListener
	}

	sub := &subscription{fn: listener}
	s.forkNext()
	s.next = append(s.next, sub)

	subscribed := true
	return func() {
		if !subscribed {
			return
		}
		subscribed = false

		s.forkNext()
		if i := slices.Index(s.next, sub); i >= 0 {
			s.next = slices.Delete(s.next, i, i+1)
		}
	}, nil
}

// forkNext gives next its own backing array if it still aliases current.
func (s *store) forkNext() {
	if s.shared {
		s.next = slices.Clone(s.current)
		s.shared = false
	}
}

func (s *store) Dispatch(action any) (Action, error) {
	a, err := toAction(action)
	if err != nil {
		return Action{}, err
	}
	if s.dispatching {
		return Action{}, ErrReentrantDispatch
	}

	next, err := s.reduce(a)
	if err != nil {
		return Action{}, err
	}
	s.state = next

	s.current = s.next
	s.shared = true
	for _, sub := range s.current {
		sub.fn()
	}
	return a, nil
}

// reduce runs the reducer with the reentrancy guard held.
func (s *store) reduce(a Action) (State, error) {
	s.dispatching = true
	defer func() { s.dispatching = false }()

	return s.reducer(s.state, a)
}

func (s *store) ReplaceReducer(next Reducer) error {
	if next == nil {
		return ErrInvalidReducer
	}
	s.reducer = next
	_, err := s.Dispatch(Action{Type: ActionTypeInit})
	return err
}
