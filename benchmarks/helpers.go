// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/statestore"
	"github.com/comalice/statestore/testutil"
)

// GenWideReducers returns n counter reducers keyed "s0".."s{n-1}".
func GenWideReducers(n int) map[string]statestore.Reducer {
	if n < 1 {
		n = 1
	}
	reducers := make(map[string]statestore.Reducer, n)
	for i := range n {
		reducers[fmt.Sprintf("s%d", i)] = testutil.Counter
	}
	return reducers
}

// GenDeepReducer nests depth combined reducers, each holding a counter and the next level.
func GenDeepReducer(depth int) statestore.Reducer {
	if depth < 1 {
		depth = 1
	}
	reducer := statestore.Combine(map[string]statestore.Reducer{"count": testutil.Counter})
	for i := 1; i < depth; i++ {
		reducer = statestore.Combine(map[string]statestore.Reducer{
			"count": testutil.Counter,
			"child": reducer,
		})
	}
	return reducer
}

// MustStore creates a store or panics. Benchmarks only.
func MustStore(reducer statestore.Reducer, opts ...statestore.Option) statestore.Store {
	s, err := statestore.New(reducer, opts...)
	if err != nil {
		panic(fmt.Sprintf("create store: %v", err))
	}
	return s
}
