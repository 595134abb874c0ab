// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateInvestmentFunded stages the investment record and, when the purchase
// is synced, the linked expense plus the source account balance, then flushes
// all in one batch.
func (r *kvLedgerRepository) CreateInvestmentFunded(ctx context.Context, investment *entity.Investment, linked *entity.Transaction, sourceBalance *decimal.Decimal) error {
	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, investmentKey(investment.ID), model.InvestmentFromEntity(investment)); err != nil {
		return err
	}
	pipe.SAdd(ctx, kvInvestmentIndex, investment.ID.String())

	if linked != nil {
		if err := stageRecord(ctx, pipe, transactionKey(linked.ID), model.TransactionFromEntity(linked)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvTransactionIndex, linked.ID.String())
		if err := r.stageBalance(ctx, pipe, linked.AccountID, *sourceBalance); err != nil {
			return err
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// FindInvestmentByID retrieves an investment by its ID.
func (r *kvLedgerRepository) FindInvestmentByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	investmentModel, err := r.loadInvestmentModel(ctx, id)
	if err != nil {
		return nil, err
	}
	return investmentModel.ToEntity(), nil
}

// FindInvestments retrieves all investments, settled records included.
func (r *kvLedgerRepository) FindInvestments(ctx context.Context) ([]*entity.Investment, error) {
	investmentModels, err := r.loadInvestmentModels(ctx)
	if err != nil {
		return nil, err
	}
	return toInvestmentEntities(investmentModels), nil
}

// FindActiveInvestments retrieves investments with status active.
func (r *kvLedgerRepository) FindActiveInvestments(ctx context.Context) ([]*entity.Investment, error) {
	investmentModels, err := r.loadInvestmentModels(ctx)
	if err != nil {
		return nil, err
	}

	active := investmentModels[:0]
	for _, im := range investmentModels {
		if im.Status == string(entity.InvestmentStatusActive) {
			active = append(active, im)
		}
	}
	return toInvestmentEntities(active), nil
}

// UpdateInvestment updates an existing investment.
func (r *kvLedgerRepository) UpdateInvestment(ctx context.Context, investment *entity.Investment) error {
	if _, err := r.loadInvestmentModel(ctx, investment.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, investmentKey(investment.ID), model.InvestmentFromEntity(investment)); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// SettleInvestment stages the lifecycle mutation and, when the settlement is
// synced, the income transaction plus the target account balance, then
// flushes all in one batch.
func (r *kvLedgerRepository) SettleInvestment(ctx context.Context, investment *entity.Investment, income *entity.Transaction, targetBalance *decimal.Decimal) error {
	if _, err := r.loadInvestmentModel(ctx, investment.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, investmentKey(investment.ID), model.InvestmentFromEntity(investment)); err != nil {
		return err
	}
	if income != nil {
		if err := stageRecord(ctx, pipe, transactionKey(income.ID), model.TransactionFromEntity(income)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvTransactionIndex, income.ID.String())
		if err := r.stageBalance(ctx, pipe, income.AccountID, *targetBalance); err != nil {
			return err
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// UpdateStockPrice overwrites CurrentPrice on every active stock holding with
// the given symbol.
func (r *kvLedgerRepository) UpdateStockPrice(ctx context.Context, name string, price decimal.Decimal) (int64, error) {
	investmentModels, err := r.loadInvestmentModels(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	pipe := r.client.TxPipeline()
	var updated int64
	for _, im := range investmentModels {
		if im.Name != name || im.Type != string(entity.InvestmentTypeStock) || im.Status != string(entity.InvestmentStatusActive) {
			continue
		}
		im.CurrentPrice = price
		im.UpdatedAt = now
		if err := stageRecord(ctx, pipe, investmentKey(im.ID), &im); err != nil {
			return 0, err
		}
		updated++
	}
	if updated == 0 {
		return 0, nil
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return updated, nil
}

// ImportInvestments bulk-inserts investments preserving IDs and statuses.
func (r *kvLedgerRepository) ImportInvestments(ctx context.Context, investments []*entity.Investment) error {
	if len(investments) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, investment := range investments {
		if err := stageRecord(ctx, pipe, investmentKey(investment.ID), model.InvestmentFromEntity(investment)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvInvestmentIndex, investment.ID.String())
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *kvLedgerRepository) loadInvestmentModel(ctx context.Context, id uuid.UUID) (*model.InvestmentModel, error) {
	payload, err := r.client.Get(ctx, investmentKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, err
	}
	var investmentModel model.InvestmentModel
	if err := json.Unmarshal(payload, &investmentModel); err != nil {
		return nil, err
	}
	return &investmentModel, nil
}

func (r *kvLedgerRepository) loadInvestmentModels(ctx context.Context) ([]model.InvestmentModel, error) {
	investmentModels, err := loadIndexed[model.InvestmentModel](ctx, r.client, kvInvestmentIndex, kvInvestmentPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(investmentModels, func(i, j int) bool {
		return investmentModels[i].CreatedAt.Before(investmentModels[j].CreatedAt)
	})
	return investmentModels, nil
}
