// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// ChangeNotifier broadcasts "data changed" to subscribers after every
// successful mutation. The implementation is owned by the composition root
// and injected into services; there is no process-wide registry.
type ChangeNotifier interface {
	// Subscribe registers a callback and returns its unsubscribe function.
	Subscribe(fn func()) (unsubscribe func())

	// Notify invokes every subscribed callback.
	Notify()
}
