// Package testutil provides reducers and listener probes shared by tests across
// packages, so that every suite exercises the store with the same fixtures.
package testutil

import (
	"fmt"
	"reflect"

	"github.com/comalice/statestore"
)

// Action types understood by the fixture reducers.
const (
	Inc    = "INC"
	Dec    = "DEC"
	Add    = "ADD"
	Toggle = "TOGGLE"
)

// Counter is an int reducer starting at 0. ADD expects an int payload.
func Counter(state statestore.State, action statestore.Action) (statestore.State, error) {
	n, _ := state.(int)
	switch action.Type {
	case Inc:
		return n + 1, nil
	case Dec:
		return n - 1, nil
	case Add:
		delta, ok := action.Payload.(int)
		if !ok {
			return nil, fmt.Errorf("ADD payload must be int, got %T", action.Payload)
		}
		return n + delta, nil
	default:
		return n, nil
	}
}

// Flag is a bool reducer starting at false and flipped by TOGGLE.
func Flag(state statestore.State, action statestore.Action) (statestore.State, error) {
	b, _ := state.(bool)
	if action.Type == Toggle {
		return !b, nil
	}
	return b, nil
}

// Static returns a reducer that always yields v.
func Static(v statestore.State) statestore.Reducer {
	return func(statestore.State, statestore.Action) (statestore.State, error) {
		return v, nil
	}
}

// SameRef reports whether a and b share the same underlying reference
// (map, slice, pointer, channel or func).
func SameRef(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Chan, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}
