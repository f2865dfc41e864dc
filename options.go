package statestore

// Creator builds a Store from a reducer and an optional preloaded state.
type Creator func(reducer Reducer, preloaded State) (Store, error)

// Enhancer wraps a Creator to add behavior at construction time.
type Enhancer func(next Creator) Creator

// Option applies configuration to New via functional options pattern.
type Option func(*options)

type options struct {
	preloaded   State
	enhancer    Enhancer
	hasEnhancer bool
}

// WithPreloadedState seeds the store with state before the initial dispatch.
//
// For parity with the positional form of New, an Enhancer passed here is used
// as the enhancer when WithEnhancer is not also given.
func WithPreloadedState(state State) Option {
	return func(o *options) {
		o.preloaded = state
	}
}

// WithEnhancer wraps store construction with e. A nil enhancer makes New fail
// with ErrInvalidEnhancer.
func WithEnhancer(e Enhancer) Option {
	return func(o *options) {
		o.enhancer = e
		o.hasEnhancer = true
	}
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if !o.hasEnhancer {
		switch e := o.preloaded.(type) {
		case Enhancer:
			o.enhancer, o.hasEnhancer, o.preloaded = e, true, nil
		case func(Creator) Creator:
			o.enhancer, o.hasEnhancer, o.preloaded = e, true, nil
		}
	}
	return o
}
