package statestore

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReducer      = errors.New("statestore: expected the reducer to be a non-nil function")
	ErrInvalidEnhancer     = errors.New("statestore: expected the enhancer to be a non-nil function")
	ErrInvalidAction       = errors.New("statestore: actions must be plain records")
	ErrInvalidActionType   = errors.New("statestore: actions may not have an undefined type")
	ErrReentrantDispatch   = errors.New("statestore: reducers may not dispatch actions")
	ErrInvalidListener     = errors.New("statestore: expected the listener to be a non-nil function")
	ErrReducerSanity       = errors.New("statestore: reducer failed sanity check")
	ErrUndefinedSliceState = errors.New("statestore: reducer returned nil state")
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown             Code = "UNKNOWN"
	CodeInvalidReducer      Code = "INVALID_REDUCER"
	CodeInvalidEnhancer     Code = "INVALID_ENHANCER"
	CodeInvalidAction       Code = "INVALID_ACTION"
	CodeInvalidActionType   Code = "INVALID_ACTION_TYPE"
	CodeReentrantDispatch   Code = "REENTRANT_DISPATCH"
	CodeInvalidListener     Code = "INVALID_LISTENER"
	CodeReducerSanity       Code = "REDUCER_SANITY"
	CodeUndefinedSliceState Code = "UNDEFINED_SLICE_STATE"
)

// CodeOf maps err to its Code. Errors that do not originate here map to CodeUnknown.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidReducer):
		return CodeInvalidReducer
	case errors.Is(err, ErrInvalidEnhancer):
		return CodeInvalidEnhancer
	case errors.Is(err, ErrInvalidAction):
		return CodeInvalidAction
	case errors.Is(err, ErrInvalidActionType):
		return CodeInvalidActionType
	case errors.Is(err, ErrReentrantDispatch):
		return CodeReentrantDispatch
	case errors.Is(err, ErrInvalidListener):
		return CodeInvalidListener
	case errors.Is(err, ErrReducerSanity):
		return CodeReducerSanity
	case errors.Is(err, ErrUndefinedSliceState):
		return CodeUndefinedSliceState
	default:
		return CodeUnknown
	}
}

// ReducerSanityError reports a slice reducer that returned nil state when probed
// while a combined reducer was built. It is returned by every invocation of that
// combined reducer.
type ReducerSanityError struct {
	Key        string
	ActionType string
	// Err is the reducer's own error, if the probe failed with one.
	Err error
}

func (e *ReducerSanityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("statestore: reducer %q failed when probed with action %q: %v", e.Key, e.ActionType, e.Err)
	}
	if e.ActionType == ActionTypeInit {
		return fmt.Sprintf("statestore: reducer %q returned nil during initialization. "+
			"If the state passed to the reducer is nil, you must explicitly return the initial state. "+
			"The initial state may not be nil.", e.Key)
	}
	return fmt.Sprintf("statestore: reducer %q returned nil when probed with a random type. "+
		"Don't try to handle %q or other actions in the %q namespace; they are private. "+
		"Return the current state for any unknown action, or the initial state if the current state is nil.",
		e.Key, ActionTypeInit, actionTypeNamespace+"*")
}

func (e *ReducerSanityError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrReducerSanity, e.Err}
	}
	return []error{ErrReducerSanity}
}

// UndefinedSliceStateError reports a slice reducer that returned nil state for a
// dispatched action.
type UndefinedSliceStateError struct {
	Key        string
	ActionType string
}

func (e *UndefinedSliceStateError) Error() string {
	return fmt.Sprintf("statestore: given action %q, reducer %q returned nil. "+
		"To ignore an action, you must explicitly return the previous state.", e.ActionType, e.Key)
}

func (e *UndefinedSliceStateError) Unwrap() error {
	return ErrUndefinedSliceState
}
