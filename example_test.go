package statestore_test

import (
	"fmt"

	"github.com/comalice/statestore"
)

func todos(state statestore.State, action statestore.Action) (statestore.State, error) {
	items, _ := state.([]string)
	if items == nil {
		items = []string{}
	}
	if action.Type == "ADD_TODO" {
		return append(items[:len(items):len(items)], action.Payload.(string)), nil
	}
	return items, nil
}

func visibility(state statestore.State, action statestore.Action) (statestore.State, error) {
	filter, _ := state.(string)
	if filter == "" {
		filter = "SHOW_ALL"
	}
	if action.Type == "SET_VISIBILITY" {
		return action.Payload.(string), nil
	}
	return filter, nil
}

func ExampleNew() {
	counter := func(state statestore.State, action statestore.Action) (statestore.State, error) {
		n, _ := state.(int)
		if action.Type == "INC" {
			return n + 1, nil
		}
		return n, nil
	}

	s, err := statestore.New(counter)
	if err != nil {
		panic(err)
	}
	unsubscribe, _ := s.Subscribe(func() { fmt.Println("state:", s.GetState()) })
	defer unsubscribe()

	s.Dispatch(statestore.Action{Type: "INC"})
	s.Dispatch(map[string]any{"type": "INC"})
	// Output:
	// state: 1
	// state: 2
}

func ExampleCombine() {
	s, err := statestore.New(statestore.Combine(map[string]statestore.Reducer{
		"todos":      todos,
		"visibility": visibility,
	}))
	if err != nil {
		panic(err)
	}

	before := s.GetState()
	s.Dispatch(statestore.Action{Type: "ADD_TODO", Payload: "write docs"})
	fmt.Println(s.GetState())

	s.Dispatch(statestore.Action{Type: "NOTHING"})
	fmt.Println(len(before.(map[string]any)["todos"].([]string)))
	// Output:
	// map[todos:[write docs] visibility:SHOW_ALL]
	// 0
}

func ExampleStore_Dispatch_reentrant() {
	var s statestore.Store
	s, _ = statestore.New(func(state statestore.State, action statestore.Action) (statestore.State, error) {
		if action.Type == "NESTED" {
			if _, err := s.Dispatch(statestore.Action{Type: "INNER"}); err != nil {
				return nil, err
			}
		}
		return 0, nil
	})

	_, err := s.Dispatch(statestore.Action{Type: "NESTED"})
	fmt.Println(err)
	fmt.Println(statestore.CodeOf(err))
	// Output:
	// statestore: reducers may not dispatch actions
	// REENTRANT_DISPATCH
}
