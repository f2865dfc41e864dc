package statestore

// Compose combines enhancers right to left: Compose(f, g)(c) is f(g(c)).
// Nil enhancers are skipped; with none left the result returns its Creator unchanged.
func Compose(enhancers ...Enhancer) Enhancer {
	return func(next Creator) Creator {
		for i := len(enhancers) - 1; i >= 0; i-- {
			if enhancers[i] == nil {
				continue
			}
			next = enhancers[i](next)
		}
		return next
	}
}
