package statestore

import "fmt"

// Observer receives state values from an Observable.
type Observer interface {
	Next(state State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(state State)

// Next calls f(state).
func (f ObserverFunc) Next(state State) {
	f(state)
}

// Subscription is returned by Observable.Subscribe.
type Subscription struct {
	unsubscribe Unsubscribe
}

// Unsubscribe stops delivery. It is safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// Observable is a push view over a Store's state.
type Observable struct {
	store Store
}

// NewObservable returns an Observable backed by s.
func NewObservable(s Store) *Observable {
	return &Observable{store: s}
}

// Subscribe pushes the current state to observer immediately and again after
// every dispatch until the subscription is cancelled.
func (o *Observable) Subscribe(observer Observer) (Subscription, error) {
	if f, ok := observer.(ObserverFunc); observer == nil || (ok && f == nil) {
		return Subscription{}, fmt.Errorf("observer: %w", ErrInvalidListener)
	}

	observe := func() {
		observer.Next(o.store.GetState())
	}
	observe()

	unsubscribe, err := o.store.Subscribe(observe)
	if err != nil {
		return Subscription{}, err
	}
	return Subscription{unsubscribe: unsubscribe}, nil
}
