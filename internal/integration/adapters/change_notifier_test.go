// Package adapters implements adapter interfaces from the application layer.
package adapters

import "testing"

func TestChangeNotifier(t *testing.T) {
	t.Run("notify reaches every subscriber", func(t *testing.T) {
		notifier := NewChangeNotifier()

		var first, second int
		notifier.Subscribe(func() { first++ })
		notifier.Subscribe(func() { second++ })

		notifier.Notify()
		notifier.Notify()

		if first != 2 || second != 2 {
			t.Errorf("expected both subscribers called twice, got %d and %d", first, second)
		}
	})

	t.Run("unsubscribed callbacks are not called", func(t *testing.T) {
		notifier := NewChangeNotifier()

		var calls int
		unsubscribe := notifier.Subscribe(func() { calls++ })

		notifier.Notify()
		unsubscribe()
		notifier.Notify()

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("notify with no subscribers does not panic", func(t *testing.T) {
		NewChangeNotifier().Notify()
	})
}

func TestConfigCategoryStore(t *testing.T) {
	seed := []string{"餐飲", "交通"}
	store := NewConfigCategoryStore(seed)

	got := store.Categories()
	if len(got) != 2 || got[0] != "餐飲" || got[1] != "交通" {
		t.Errorf("unexpected categories: %v", got)
	}

	// Mutating the seed slice must not leak into the store.
	seed[0] = "changed"
	if store.Categories()[0] != "餐飲" {
		t.Error("expected store to copy the seed slice")
	}
}
