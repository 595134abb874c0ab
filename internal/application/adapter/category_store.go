// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// CategoryStore supplies the initial category list used for budget category
// selection. Read-only; category management itself is outside the engine.
type CategoryStore interface {
	// Categories returns the configured category names in display order.
	Categories() []string
}
