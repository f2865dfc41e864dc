// Package builder constructs typed reducers from per-action-type handlers.
//
//	todos := builder.New([]string{}).
//		On("ADD_TODO", func(s []string, a statestore.Action) ([]string, error) {
//			return append(slices.Clip(s), a.Payload.(string)), nil
//		}).
//		Build()
//
// The built reducer substitutes the initial value for absent state and returns the
// previous state untouched for action types it has no handler for, which is what
// statestore.Combine expects from every slice reducer.
package builder

import (
	"errors"
	"fmt"
	"maps"

	"github.com/comalice/statestore"
)

// ErrStateType is returned when a built reducer receives state of the wrong type.
var ErrStateType = errors.New("unexpected state type")

// Handler computes the next state of type S for one action.
type Handler[S any] func(state S, action statestore.Action) (S, error)

// ReducerBuilder provides a fluent API for assembling a reducer over state of type S.
type ReducerBuilder[S any] struct {
	initial  S
	handlers map[string]Handler[S]
	fallback Handler[S]
}

// New starts a builder whose reducer yields initial when no state exists yet.
// initial should not be a nil pointer, map or slice: a reducer must never produce
// absent state.
func New[S any](initial S) *ReducerBuilder[S] {
	return &ReducerBuilder[S]{
		initial:  initial,
		handlers: make(map[string]Handler[S]),
	}
}

// On registers h for actionType, replacing any earlier handler. A nil h removes it.
func (b *ReducerBuilder[S]) On(actionType string, h Handler[S]) *ReducerBuilder[S] {
	if h == nil {
		delete(b.handlers, actionType)
		return b
	}
	b.handlers[actionType] = h
	return b
}

// Default registers the handler for action types without their own handler.
// It also receives ActionTypeInit and unknown probe actions, so it must return the
// state unchanged for anything it does not recognize.
func (b *ReducerBuilder[S]) Default(h Handler[S]) *ReducerBuilder[S] {
	b.fallback = h
	return b
}

// Build returns the reducer. Later changes to the builder do not affect it.
func (b *ReducerBuilder[S]) Build() statestore.Reducer {
	initial := b.initial
	handlers := maps.Clone(b.handlers)
	fallback := b.fallback

	return func(state statestore.State, action statestore.Action) (statestore.State, error) {
		current := initial
		if state != nil {
			s, ok := state.(S)
			if !ok {
				return nil, fmt.Errorf("%w: got %T, want %T", ErrStateType, state, initial)
			}
			current = s
		}

		h, ok := handlers[action.Type]
		if !ok {
			h = fallback
		}
		if h == nil {
			if state != nil {
				return state, nil
			}
			return current, nil
		}

		next, err := h(current, action)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", action.Type, err)
		}
		return next, nil
	}
}
