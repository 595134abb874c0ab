// Package usecasetest provides in-memory collaborators for use case tests.
package usecasetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// Ledger is a map-backed adapter.LedgerRepository for exercising use cases
// without a storage backend. It returns the same not-found sentinels as the
// real backends.
type Ledger struct {
	mu           sync.Mutex
	accounts     map[uuid.UUID]*entity.Account
	transactions map[uuid.UUID]*entity.Transaction
	budgets      map[uuid.UUID]*entity.Budget
	goals        map[uuid.UUID]*entity.Goal
	investments  map[uuid.UUID]*entity.Investment
}

var _ adapter.LedgerRepository = (*Ledger)(nil)

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:     make(map[uuid.UUID]*entity.Account),
		transactions: make(map[uuid.UUID]*entity.Transaction),
		budgets:      make(map[uuid.UUID]*entity.Budget),
		goals:        make(map[uuid.UUID]*entity.Goal),
		investments:  make(map[uuid.UUID]*entity.Investment),
	}
}

// SeedAccount stores an account directly, bypassing the account service.
func (l *Ledger) SeedAccount(account *entity.Account) {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *account
	l.accounts[account.ID] = &copied
}

// SeedGoal stores a goal directly.
func (l *Ledger) SeedGoal(goal *entity.Goal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *goal
	l.goals[goal.ID] = &copied
}

// SeedBudget stores a budget directly.
func (l *Ledger) SeedBudget(budget *entity.Budget) {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *budget
	l.budgets[budget.ID] = &copied
}

// SeedInvestment stores an investment directly.
func (l *Ledger) SeedInvestment(investment *entity.Investment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *investment
	l.investments[investment.ID] = &copied
}

// Balance returns an account's current balance, or zero when absent.
func (l *Ledger) Balance(id uuid.UUID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	if account, ok := l.accounts[id]; ok {
		return account.CurrentBalance
	}
	return decimal.Zero
}

// TransactionCount returns the number of stored transactions.
func (l *Ledger) TransactionCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}

// Investment returns a stored investment, or nil when absent.
func (l *Ledger) Investment(id uuid.UUID) *entity.Investment {
	l.mu.Lock()
	defer l.mu.Unlock()
	if investment, ok := l.investments[id]; ok {
		copied := *investment
		return &copied
	}
	return nil
}

// --- AccountRepository ---

func (l *Ledger) CreateAccount(_ context.Context, account *entity.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *account
	l.accounts[account.ID] = &copied
	return nil
}

func (l *Ledger) FindAccountByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (l *Ledger) FindAccounts(_ context.Context) ([]*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	accounts := make([]*entity.Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		copied := *account
		accounts = append(accounts, &copied)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].SortIndex < accounts[j].SortIndex
	})
	return accounts, nil
}

func (l *Ledger) UpdateAccount(_ context.Context, account *entity.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[account.ID]; !ok {
		return domainerror.ErrAccountNotFound
	}
	copied := *account
	l.accounts[account.ID] = &copied
	return nil
}

func (l *Ledger) DeleteAccount(_ context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[id]; !ok {
		return domainerror.ErrAccountNotFound
	}
	delete(l.accounts, id)
	return nil
}

func (l *Ledger) UpdateAccountBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setBalance(id, balance)
}

func (l *Ledger) UpdateAccountOrder(_ context.Context, orderedIDs []uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, id := range orderedIDs {
		account, ok := l.accounts[id]
		if !ok {
			return domainerror.ErrAccountNotFound
		}
		account.SortIndex = i
	}
	return nil
}

func (l *Ledger) ImportAccounts(_ context.Context, accounts []*entity.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, account := range accounts {
		copied := *account
		l.accounts[account.ID] = &copied
	}
	return nil
}

// setBalance must be called with the lock held.
func (l *Ledger) setBalance(id uuid.UUID, balance decimal.Decimal) error {
	account, ok := l.accounts[id]
	if !ok {
		return domainerror.ErrAccountNotFound
	}
	account.CurrentBalance = balance
	return nil
}

// --- TransactionRepository ---

func (l *Ledger) CreateTransactionWithBalance(_ context.Context, transaction *entity.Transaction, balance decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.setBalance(transaction.AccountID, balance); err != nil {
		return err
	}
	copied := *transaction
	l.transactions[transaction.ID] = &copied
	return nil
}

func (l *Ledger) FindTransactionByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	transaction, ok := l.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (l *Ledger) FindTransactions(_ context.Context) ([]*entity.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedTransactions(func(*entity.Transaction) bool { return true }), nil
}

func (l *Ledger) FindTransactionsByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedTransactions(func(t *entity.Transaction) bool {
		return t.References(accountID)
	}), nil
}

func (l *Ledger) FindTransactionsInRange(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedTransactions(func(t *entity.Transaction) bool {
		return !t.Date.Before(start) && !t.Date.After(end)
	}), nil
}

func (l *Ledger) UpdateTransactionWithBalance(_ context.Context, transaction *entity.Transaction, balance decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	if err := l.setBalance(transaction.AccountID, balance); err != nil {
		return err
	}
	copied := *transaction
	l.transactions[transaction.ID] = &copied
	return nil
}

func (l *Ledger) DeleteTransactionWithBalances(_ context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	for accountID, balance := range balances {
		if err := l.setBalance(accountID, balance); err != nil {
			return err
		}
	}
	delete(l.transactions, id)
	return nil
}

func (l *Ledger) PerformTransfer(_ context.Context, transfer *entity.Transaction, fromBalance, toBalance decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if transfer.TargetAccountID == nil {
		return domainerror.ErrTransactionNotFound
	}
	if err := l.setBalance(transfer.AccountID, fromBalance); err != nil {
		return err
	}
	if err := l.setBalance(*transfer.TargetAccountID, toBalance); err != nil {
		return err
	}
	copied := *transfer
	l.transactions[transfer.ID] = &copied
	return nil
}

func (l *Ledger) UpdateTransfer(_ context.Context, transfer *entity.Transaction, balances map[uuid.UUID]decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.transactions[transfer.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	for accountID, balance := range balances {
		if err := l.setBalance(accountID, balance); err != nil {
			return err
		}
	}
	copied := *transfer
	l.transactions[transfer.ID] = &copied
	return nil
}

func (l *Ledger) GetCategorySpending(_ context.Context, year int, month time.Month) ([]adapter.CategorySpending, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	totals := make(map[string]decimal.Decimal)
	for _, transaction := range l.transactions {
		if transaction.Kind != entity.TransactionKindExpense {
			continue
		}
		if transaction.Date.Before(start) || !transaction.Date.Before(end) {
			continue
		}
		totals[transaction.Description] = totals[transaction.Description].Add(transaction.Amount)
	}

	result := make([]adapter.CategorySpending, 0, len(totals))
	for category, total := range totals {
		result = append(result, adapter.CategorySpending{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

func (l *Ledger) GetDistinctCategories(_ context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	seen := make(map[string]bool)
	for _, transaction := range l.transactions {
		if transaction.Kind == entity.TransactionKindExpense && transaction.Description != "" {
			seen[transaction.Description] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (l *Ledger) ImportTransactions(_ context.Context, transactions []*entity.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, transaction := range transactions {
		copied := *transaction
		l.transactions[transaction.ID] = &copied
	}
	return nil
}

// sortedTransactions must be called with the lock held.
func (l *Ledger) sortedTransactions(keep func(*entity.Transaction) bool) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(l.transactions))
	for _, transaction := range l.transactions {
		if keep(transaction) {
			copied := *transaction
			transactions = append(transactions, &copied)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions
}

// --- BudgetRepository ---

func (l *Ledger) CreateBudget(_ context.Context, budget *entity.Budget) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *budget
	l.budgets[budget.ID] = &copied
	return nil
}

func (l *Ledger) FindBudgetByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	budget, ok := l.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (l *Ledger) FindBudgets(_ context.Context) ([]*entity.Budget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	budgets := make([]*entity.Budget, 0, len(l.budgets))
	for _, budget := range l.budgets {
		copied := *budget
		budgets = append(budgets, &copied)
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.Before(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (l *Ledger) UpdateBudget(_ context.Context, budget *entity.Budget) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.budgets[budget.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	copied := *budget
	l.budgets[budget.ID] = &copied
	return nil
}

func (l *Ledger) DeleteBudget(_ context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.budgets[id]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(l.budgets, id)
	return nil
}

func (l *Ledger) ImportBudgets(_ context.Context, budgets []*entity.Budget) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, budget := range budgets {
		copied := *budget
		l.budgets[budget.ID] = &copied
	}
	return nil
}

// --- GoalRepository ---

func (l *Ledger) CreateGoal(_ context.Context, goal *entity.Goal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := *goal
	l.goals[goal.ID] = &copied
	return nil
}

func (l *Ledger) FindGoalByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	goal, ok := l.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (l *Ledger) FindGoals(_ context.Context) ([]*entity.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	goals := make([]*entity.Goal, 0, len(l.goals))
	for _, goal := range l.goals {
		copied := *goal
		goals = append(goals, &copied)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (l *Ledger) UpdateGoal(_ context.Context, goal *entity.Goal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	l.goals[goal.ID] = &copied
	return nil
}

func (l *Ledger) DeleteGoal(_ context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(l.goals, id)
	return nil
}

func (l *Ledger) ImportGoals(_ context.Context, goals []*entity.Goal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, goal := range goals {
		copied := *goal
		l.goals[goal.ID] = &copied
	}
	return nil
}

// --- InvestmentRepository ---

func (l *Ledger) CreateInvestmentFunded(_ context.Context, investment *entity.Investment, linked *entity.Transaction, sourceBalance *decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if linked != nil {
		if err := l.setBalance(linked.AccountID, *sourceBalance); err != nil {
			return err
		}
		copied := *linked
		l.transactions[linked.ID] = &copied
	}
	copied := *investment
	l.investments[investment.ID] = &copied
	return nil
}

func (l *Ledger) FindInvestmentByID(_ context.Context, id uuid.UUID) (*entity.Investment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	investment, ok := l.investments[id]
	if !ok {
		return nil, domainerror.ErrInvestmentNotFound
	}
	copied := *investment
	return &copied, nil
}

func (l *Ledger) FindInvestments(_ context.Context) ([]*entity.Investment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedInvestments(func(*entity.Investment) bool { return true }), nil
}

func (l *Ledger) FindActiveInvestments(_ context.Context) ([]*entity.Investment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedInvestments(func(i *entity.Investment) bool {
		return i.Status == entity.InvestmentStatusActive
	}), nil
}

func (l *Ledger) UpdateInvestment(_ context.Context, investment *entity.Investment) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.investments[investment.ID]; !ok {
		return domainerror.ErrInvestmentNotFound
	}
	copied := *investment
	l.investments[investment.ID] = &copied
	return nil
}

func (l *Ledger) SettleInvestment(_ context.Context, investment *entity.Investment, income *entity.Transaction, targetBalance *decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.investments[investment.ID]; !ok {
		return domainerror.ErrInvestmentNotFound
	}
	if income != nil {
		if err := l.setBalance(income.AccountID, *targetBalance); err != nil {
			return err
		}
		copied := *income
		l.transactions[income.ID] = &copied
	}
	copied := *investment
	l.investments[investment.ID] = &copied
	return nil
}

func (l *Ledger) UpdateStockPrice(_ context.Context, name string, price decimal.Decimal) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var updated int64
	for _, investment := range l.investments {
		if investment.Name == name &&
			investment.Type == entity.InvestmentTypeStock &&
			investment.Status == entity.InvestmentStatusActive {
			investment.CurrentPrice = price
			investment.UpdatedAt = time.Now().UTC()
			updated++
		}
	}
	return updated, nil
}

func (l *Ledger) ImportInvestments(_ context.Context, investments []*entity.Investment) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, investment := range investments {
		copied := *investment
		l.investments[investment.ID] = &copied
	}
	return nil
}

// sortedInvestments must be called with the lock held.
func (l *Ledger) sortedInvestments(keep func(*entity.Investment) bool) []*entity.Investment {
	investments := make([]*entity.Investment, 0, len(l.investments))
	for _, investment := range l.investments {
		if keep(investment) {
			copied := *investment
			investments = append(investments, &copied)
		}
	}
	sort.Slice(investments, func(i, j int) bool {
		return investments[i].CreatedAt.Before(investments[j].CreatedAt)
	})
	return investments
}

// --- LedgerRepository ---

func (l *Ledger) ClearAll(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts = make(map[uuid.UUID]*entity.Account)
	l.transactions = make(map[uuid.UUID]*entity.Transaction)
	l.budgets = make(map[uuid.UUID]*entity.Budget)
	l.goals = make(map[uuid.UUID]*entity.Goal)
	l.investments = make(map[uuid.UUID]*entity.Investment)
	return nil
}

// Notifier counts change notifications for assertions.
type Notifier struct {
	mu    sync.Mutex
	count int
}

var _ adapter.ChangeNotifier = (*Notifier)(nil)

// NewNotifier creates a Notifier with zero notifications.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe is a no-op registration.
func (n *Notifier) Subscribe(func()) func() {
	return func() {}
}

// Notify increments the notification count.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
}

// Count returns the number of notifications seen.
func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}
