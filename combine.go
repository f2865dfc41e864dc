package statestore

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/comalice/statestore/internal/config"
	"github.com/comalice/statestore/internal/diag"
)

// CombineOption configures Combine.
type CombineOption func(*combineOptions)

type combineOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives composition diagnostics.
func WithLogger(logger *zap.Logger) CombineOption {
	return func(o *combineOptions) {
		o.logger = logger
	}
}

// Combine turns a map of slice reducers into a single reducer whose state is a
// map[string]any holding one entry per key.
//
// Nil reducers are dropped. Each remaining reducer is probed with ActionTypeInit and
// with a random private action type; a reducer that returns nil (or fails) for either
// probe makes every call of the combined reducer return a *ReducerSanityError.
// Slices are reduced in sorted key order.
//
// A slice counts as unchanged when its reducer returns the same map, slice, pointer,
// channel or func it was given, or a comparable value equal to it. Other values, such
// as structs holding slices or maps, always count as changed and make every dispatch
// build a new top-level map; hold such slices behind a pointer instead.
func Combine(reducers map[string]Reducer, opts ...CombineOption) Reducer {
	var o combineOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	warner := diag.FromConfig(o.logger, cfg)
	if cfgErr != nil {
		warner.Warn("failed to load configuration; using defaults", zap.Error(cfgErr))
	}

	final := make(map[string]Reducer, len(reducers))
	for _, key := range slices.Sorted(maps.Keys(reducers)) {
		if reducers[key] == nil {
			warner.Warn("no reducer provided for key", zap.String("key", key))
			continue
		}
		final[key] = reducers[key]
	}
	keys := slices.Sorted(maps.Keys(final))

	sanityErr := assertReducerShape(keys, final)
	unexpectedSeen := map[string]bool{}

	return func(state State, action Action) (State, error) {
		if sanityErr != nil {
			return nil, sanityErr
		}

		if state == nil {
			state = map[string]any{}
		}
		if warner.Enabled() {
			if msg, fields := unexpectedStateShape(state, keys, action, unexpectedSeen); msg != "" {
				warner.Warn(msg, fields...)
			}
		}

		prev, _ := state.(map[string]any)

		// next stays nil until the first slice changes.
		var next map[string]any
		for i, key := range keys {
			prevSlice := prev[key]
			nextSlice, err := final[key](prevSlice, action)
			if err != nil {
				return nil, fmt.Errorf("reducer %q: %w", key, err)
			}
			if nextSlice == nil {
				return nil, &UndefinedSliceStateError{Key: key, ActionType: action.Type}
			}

			if next == nil && !sameState(nextSlice, prevSlice) {
				next = make(map[string]any, len(keys))
				for _, done := range keys[:i] {
					next[done] = prev[done]
				}
			}
			if next != nil {
				next[key] = nextSlice
			}
		}

		if next == nil {
			return state, nil
		}
		return next, nil
	}
}

// probeActionType returns a private action type no application reducer handles.
func probeActionType() string {
	return actionTypeNamespace + "PROBE_UNKNOWN_ACTION_" + uuid.NewString()
}

// assertReducerShape probes every reducer and returns the first failure.
func assertReducerShape(keys []string, reducers map[string]Reducer) error {
	for _, key := range keys {
		reducer := reducers[key]

		initial, err := reducer(nil, Action{Type: ActionTypeInit})
		if err != nil || initial == nil {
			return &ReducerSanityError{Key: key, ActionType: ActionTypeInit, Err: err}
		}

		probe := probeActionType()
		probed, err := reducer(nil, Action{Type: probe})
		if err != nil || probed == nil {
			return &ReducerSanityError{Key: key, ActionType: probe, Err: err}
		}
	}
	return nil
}

// unexpectedStateShape describes how state deviates from the combined shape.
// Keys reported once are remembered in seen and not reported again.
func unexpectedStateShape(state State, keys []string, action Action, seen map[string]bool) (string, []zap.Field) {
	argument := "previous state received by the reducer"
	if action.Type == ActionTypeInit {
		argument = "preloaded state passed to New"
	}

	if len(keys) == 0 {
		return "store does not have a valid reducer; make sure the map passed to Combine holds non-nil reducers", nil
	}

	m, ok := state.(map[string]any)
	if !ok {
		return fmt.Sprintf("the %s has unexpected type %T; expected a map with keys \"%s\"",
				argument, state, strings.Join(keys, `", "`)),
			[]zap.Field{zap.Strings("keys", keys)}
	}

	var unexpected []string
	for k := range m {
		if !slices.Contains(keys, k) && !seen[k] {
			unexpected = append(unexpected, k)
		}
	}
	if len(unexpected) == 0 {
		return "", nil
	}
	slices.Sort(unexpected)
	for _, k := range unexpected {
		seen[k] = true
	}

	noun := "key"
	if len(unexpected) > 1 {
		noun = "keys"
	}
	return fmt.Sprintf("unexpected %s found in %s; expected one of the known reducer keys, unexpected keys will be ignored",
			noun, argument),
		[]zap.Field{zap.Strings("unexpected", unexpected), zap.Strings("keys", keys)}
}
