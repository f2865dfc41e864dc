package statestore

import "fmt"

const actionTypeNamespace = "@@statestore/"

// ActionTypeInit is dispatched when a store is created and whenever its reducer is
// replaced. Reducers must treat it like any other unknown action.
const ActionTypeInit = actionTypeNamespace + "INIT"

// State is the opaque value held by a Store. nil means "no state".
type State = any

// Action describes an intended state transition.
//
// Actions are values: once dispatched they must not be modified.
type Action struct {
	Type    string `json:"type" yaml:"type"`
	Payload any    `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// NewAction creates an Action.
func NewAction(actionType string, payload any) Action {
	return Action{
		Type:    actionType,
		Payload: payload,
	}
}

// Reducer computes the next state from the previous state and an action.
//
// A reducer receives nil state when none exists yet and must return its initial
// state in that case. It must return the previous state unchanged for action types
// it does not handle, including ActionTypeInit. A non-nil error aborts the dispatch.
type Reducer func(state State, action Action) (State, error)

// Listener is notified after every successful dispatch.
type Listener func()

// Unsubscribe removes a listener registration. Calls after the first are no-ops.
type Unsubscribe func()

// DispatchFunc matches Store.Dispatch.
type DispatchFunc func(action any) (Action, error)

// toAction validates a dispatched value and converts it into an Action.
//
// Accepted shapes are Action, a non-nil *Action, and map[string]any records
// carrying a string "type" field; remaining map fields become the payload.
func toAction(v any) (Action, error) {
	var a Action
	switch t := v.(type) {
	case Action:
		a = t
	case *Action:
		if t == nil {
			return Action{}, fmt.Errorf("%w: got nil *Action", ErrInvalidAction)
		}
		a = *t
	case map[string]any:
		if t == nil {
			return Action{}, fmt.Errorf("%w: got nil map", ErrInvalidAction)
		}
		typ, ok := t["type"]
		if !ok || typ == nil {
			return Action{}, fmt.Errorf("%w: missing \"type\" field", ErrInvalidActionType)
		}
		s, ok := typ.(string)
		if !ok {
			return Action{}, fmt.Errorf("%w: \"type\" must be a string, got %T", ErrInvalidActionType, typ)
		}
		a.Type = s
		if len(t) > 1 {
			payload := make(map[string]any, len(t)-1)
			for k, val := range t {
				if k != "type" {
					payload[k] = val
				}
			}
			a.Payload = payload
		}
	default:
		return Action{}, fmt.Errorf("%w: got %T", ErrInvalidAction, v)
	}

	if a.Type == "" {
		return Action{}, fmt.Errorf("%w: have you misspelled a constant?", ErrInvalidActionType)
	}
	return a, nil
}
