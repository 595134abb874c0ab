// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/ledgerkeep/backend/config"
	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/application/usecase/account"
	"github.com/ledgerkeep/backend/internal/application/usecase/backup"
	"github.com/ledgerkeep/backend/internal/application/usecase/budget"
	"github.com/ledgerkeep/backend/internal/application/usecase/goal"
	"github.com/ledgerkeep/backend/internal/application/usecase/investment"
	"github.com/ledgerkeep/backend/internal/application/usecase/transaction"
	"github.com/ledgerkeep/backend/internal/domain/valueobject"
	"github.com/ledgerkeep/backend/internal/infra/server/router"
	"github.com/ledgerkeep/backend/internal/integration/adapters"
	"github.com/ledgerkeep/backend/internal/integration/entrypoint/controller"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Ledger   adapter.LedgerRepository
	Notifier adapter.ChangeNotifier
	Router   *router.Router
}

// NewInjector wires every use case and controller on top of the given ledger
// repository. The repository decides the backend; everything above it is
// backend-agnostic.
func NewInjector(cfg *config.Config, ledger adapter.LedgerRepository, storageHealthChecker func() bool) *Injector {
	notifier := adapters.NewChangeNotifier()
	categoryStore := adapters.NewConfigCategoryStore(cfg.Currency.Categories)
	rates := valueobject.NewRateTable(cfg.Currency.Main, cfg.Currency.Rates)

	// Account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(ledger)
	addAccountUseCase := account.NewAddAccountUseCase(ledger, notifier)
	updateAccountUseCase := account.NewUpdateAccountUseCase(ledger, notifier)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(ledger, ledger, notifier)
	reorderAccountsUseCase := account.NewReorderAccountsUseCase(ledger, notifier)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(ledger)
	addTransactionUseCase := transaction.NewAddTransactionUseCase(ledger, ledger, notifier)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(ledger, ledger, notifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(ledger, ledger, notifier)
	performTransferUseCase := transaction.NewPerformTransferUseCase(ledger, ledger, notifier)
	updateTransferUseCase := transaction.NewUpdateTransferUseCase(ledger, ledger, notifier)
	categorySpendingUseCase := transaction.NewGetCategorySpendingUseCase(ledger)

	// Budget use cases
	budgetSpendingUseCase := budget.NewGetBudgetSpendingUseCase(ledger, ledger, ledger, rates)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(ledger, budgetSpendingUseCase)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(ledger, notifier)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(ledger, notifier)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(ledger, notifier)
	listCategoriesUseCase := budget.NewListCategoriesUseCase(categoryStore, ledger)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(ledger)
	createGoalUseCase := goal.NewCreateGoalUseCase(ledger, notifier)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(ledger, notifier)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(ledger, notifier)
	adjustGoalUseCase := goal.NewAdjustGoalUseCase(ledger, addTransactionUseCase, performTransferUseCase, notifier)

	// Investment use cases
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(ledger)
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(ledger, ledger, notifier)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(ledger, notifier)
	processActionUseCase := investment.NewProcessActionUseCase(ledger, ledger, notifier)
	updateStockPriceUseCase := investment.NewUpdateStockPriceUseCase(ledger, notifier)

	// Backup use cases
	exportDataUseCase := backup.NewExportDataUseCase(ledger, listCategoriesUseCase)
	importDataUseCase := backup.NewImportDataUseCase(ledger, notifier)

	// Controllers
	healthController := controller.NewHealthController(cfg.Storage.Backend, storageHealthChecker)
	accountController := controller.NewAccountController(
		listAccountsUseCase,
		addAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		reorderAccountsUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		addTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		performTransferUseCase,
		updateTransferUseCase,
		categorySpendingUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		listCategoriesUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		adjustGoalUseCase,
	)
	investmentController := controller.NewInvestmentController(
		listInvestmentsUseCase,
		createInvestmentUseCase,
		updateInvestmentUseCase,
		processActionUseCase,
		updateStockPriceUseCase,
	)
	backupController := controller.NewBackupController(exportDataUseCase, importDataUseCase)

	r := router.NewRouter(
		healthController,
		accountController,
		transactionController,
		budgetController,
		goalController,
		investmentController,
		backupController,
	)

	return &Injector{
		Config:   cfg,
		Ledger:   ledger,
		Notifier: notifier,
		Router:   r,
	}
}
