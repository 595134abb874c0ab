// Package entity defines the core business entities for the domain layer.
package entity

// Snapshot is a full dump of the ledger used by the backup collaborator.
// Import trusts the snapshot's stored balances directly; it never rederives
// them from the transaction history.
type Snapshot struct {
	Accounts     []*Account
	Transactions []*Transaction
	Budgets      []*Budget
	Goals        []*Goal
	Investments  []*Investment
	Categories   []string
}
