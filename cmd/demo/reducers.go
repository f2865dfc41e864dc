package main

import (
	"fmt"
	"slices"

	"github.com/comalice/statestore"
	"github.com/comalice/statestore/builder"
)

// Action types understood by the demo store.
const (
	actionInc        = "INC"
	actionDec        = "DEC"
	actionAdd        = "ADD"
	actionToggle     = "TOGGLE"
	actionAddTodo    = "ADD_TODO"
	actionClearTodos = "CLEAR_TODOS"
)

func demoReducers() map[string]statestore.Reducer {
	count := builder.New(0).
		On(actionInc, func(n int, _ statestore.Action) (int, error) { return n + 1, nil }).
		On(actionDec, func(n int, _ statestore.Action) (int, error) { return n - 1, nil }).
		On(actionAdd, func(n int, a statestore.Action) (int, error) {
			delta, ok := a.Payload.(int)
			if !ok {
				return n, fmt.Errorf("payload must be an integer, got %T", a.Payload)
			}
			return n + delta, nil
		})

	flag := builder.New(false).
		On(actionToggle, func(b bool, _ statestore.Action) (bool, error) { return !b, nil })

	todos := builder.New([]string{}).
		On(actionAddTodo, func(items []string, a statestore.Action) ([]string, error) {
			text, ok := a.Payload.(string)
			if !ok || text == "" {
				return items, fmt.Errorf("payload must be a non-empty string, got %T", a.Payload)
			}
			return append(slices.Clip(items), text), nil
		}).
		On(actionClearTodos, func(items []string, _ statestore.Action) ([]string, error) {
			if len(items) == 0 {
				return items, nil
			}
			return []string{}, nil
		})

	return map[string]statestore.Reducer{
		"count": count.Build(),
		"flag":  flag.Build(),
		"todos": todos.Build(),
	}
}
