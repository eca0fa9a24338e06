package interfaces

// IResultObserver receives workflow events for metrics.
type IResultObserver interface {
	TransitionObserved(action, outcome string)
	LinesSynced(collection, op string, n int)
}
