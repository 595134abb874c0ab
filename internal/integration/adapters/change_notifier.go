// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"sync"

	"github.com/ledgerkeep/backend/internal/application/adapter"
)

// changeNotifier implements the adapter.ChangeNotifier interface with an
// in-process subscriber list. Callbacks run synchronously on the notifying
// goroutine and must not block.
type changeNotifier struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func()
}

// NewChangeNotifier creates a new change notifier instance.
func NewChangeNotifier() adapter.ChangeNotifier {
	return &changeNotifier{
		subscribers: make(map[int]func()),
	}
}

// Subscribe registers a callback and returns a function that removes it.
func (n *changeNotifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subscribers, id)
	}
}

// Notify invokes every registered callback.
func (n *changeNotifier) Notify() {
	n.mu.Lock()
	callbacks := make([]func(), 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
