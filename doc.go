// Package statestore provides a minimal, synchronous, observable state container.
//
// A Store holds a single current State. The only way to change it is to Dispatch an
// Action, which runs the current Reducer and then notifies every subscribed Listener.
//
// # Quick Start
//
//	counter := func(state statestore.State, action statestore.Action) (statestore.State, error) {
//		n, _ := state.(int)
//		if action.Type == "INC" {
//			return n + 1, nil
//		}
//		return n, nil
//	}
//
//	s, err := statestore.New(counter)
//	if err != nil {
//		return err
//	}
//	unsubscribe, _ := s.Subscribe(func() { fmt.Println(s.GetState()) })
//	defer unsubscribe()
//	s.Dispatch(statestore.Action{Type: "INC"}) // prints 1
//
// # Composition
//
// Combine builds one reducer out of per-slice reducers keyed by name. The combined
// state is a map[string]any, and a dispatch that changes no slice returns the very
// same map, so parents can detect no-ops cheaply.
//
// # Dispatch Semantics
//
//   - Reducers may not dispatch; doing so fails with ErrReentrantDispatch.
//   - Listeners run synchronously, in registration order, after the state is updated.
//   - The set of listeners notified by a dispatch is fixed when notification starts.
//     Subscribing or unsubscribing from inside a listener takes effect on the next dispatch.
//
// # Enhancers
//
// An Enhancer wraps the store Creator once, at construction time. The enhancer
// package ships logging, tracing, history recording and channel publishing enhancers;
// use Compose to apply several.
//
// A Store is not safe for concurrent use by multiple goroutines.
package statestore
