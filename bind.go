package statestore

// ActionCreator builds an Action from arbitrary arguments.
type ActionCreator func(args ...any) Action

// BoundActionCreator builds an Action and dispatches it.
type BoundActionCreator func(args ...any) (Action, error)

// BindActionCreator wraps creator so that every call dispatches its result.
func BindActionCreator(creator ActionCreator, dispatch DispatchFunc) BoundActionCreator {
	return func(args ...any) (Action, error) {
		return dispatch(creator(args...))
	}
}

// BindActionCreators binds every non-nil creator in creators.
func BindActionCreators(creators map[string]ActionCreator, dispatch DispatchFunc) map[string]BoundActionCreator {
	bound := make(map[string]BoundActionCreator, len(creators))
	for name, creator := range creators {
		if creator == nil {
			continue
		}
		bound[name] = BindActionCreator(creator, dispatch)
	}
	return bound
}
