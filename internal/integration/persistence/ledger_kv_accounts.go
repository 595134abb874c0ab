// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateAccount creates a new account.
func (r *kvLedgerRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, accountKey(account.ID), model.AccountFromEntity(account)); err != nil {
		return err
	}
	pipe.SAdd(ctx, kvAccountIndex, account.ID.String())
	_, err := pipe.Exec(ctx)
	return err
}

// FindAccountByID retrieves an account by its ID.
func (r *kvLedgerRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	accountModel, err := r.loadAccountModel(ctx, id)
	if err != nil {
		return nil, err
	}
	return accountModel.ToEntity(), nil
}

// FindAccounts retrieves all accounts ordered by SortIndex ascending.
func (r *kvLedgerRepository) FindAccounts(ctx context.Context) ([]*entity.Account, error) {
	accountModels, err := loadIndexed[model.AccountModel](ctx, r.client, kvAccountIndex, kvAccountPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(accountModels, func(i, j int) bool {
		return accountModels[i].SortIndex < accountModels[j].SortIndex
	})

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// UpdateAccount updates an existing account.
func (r *kvLedgerRepository) UpdateAccount(ctx context.Context, account *entity.Account) error {
	if _, err := r.loadAccountModel(ctx, account.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, accountKey(account.ID), model.AccountFromEntity(account)); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// DeleteAccount removes an account.
func (r *kvLedgerRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if _, err := r.loadAccountModel(ctx, id); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, accountKey(id))
	pipe.SRem(ctx, kvAccountIndex, id.String())
	_, err := pipe.Exec(ctx)
	return err
}

// UpdateAccountBalance overwrites an account's current balance.
func (r *kvLedgerRepository) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	pipe := r.client.TxPipeline()
	if err := r.stageBalance(ctx, pipe, id, balance); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// UpdateAccountOrder reassigns SortIndex by position in orderedIDs. All
// rewritten records flush in one batched write.
func (r *kvLedgerRepository) UpdateAccountOrder(ctx context.Context, orderedIDs []uuid.UUID) error {
	now := time.Now().UTC()

	pipe := r.client.TxPipeline()
	for i, id := range orderedIDs {
		accountModel, err := r.loadAccountModel(ctx, id)
		if err != nil {
			return err
		}
		accountModel.SortIndex = i
		accountModel.UpdatedAt = now
		if err := stageRecord(ctx, pipe, accountKey(id), accountModel); err != nil {
			return err
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// ImportAccounts bulk-inserts accounts preserving IDs and balances.
func (r *kvLedgerRepository) ImportAccounts(ctx context.Context, accounts []*entity.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, account := range accounts {
		if err := stageRecord(ctx, pipe, accountKey(account.ID), model.AccountFromEntity(account)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvAccountIndex, account.ID.String())
	}
	_, err := pipe.Exec(ctx)
	return err
}
