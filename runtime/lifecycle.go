package runtime

// Initializer is implemented by components that need to run setup code
// once, before their first render (subscriptions, initial data fetches).
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from
// their props. OnPropertiesSet runs before every render, including the first.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// Cleaner is implemented by components holding resources that must be
// released when the component leaves the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater lets a reused child instance take the props of a freshly
// constructed one without losing its internal state.
type PropUpdater interface {
	ApplyProps(source Component)
}
