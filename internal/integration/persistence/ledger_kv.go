// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// Key layout: one JSON record per entity under ledger:<kind>:<id>, plus one
// set per kind holding the member IDs.
const (
	kvAccountPrefix     = "ledger:account:"
	kvTransactionPrefix = "ledger:transaction:"
	kvBudgetPrefix      = "ledger:budget:"
	kvGoalPrefix        = "ledger:goal:"
	kvInvestmentPrefix  = "ledger:investment:"

	kvAccountIndex     = "ledger:accounts"
	kvTransactionIndex = "ledger:transactions"
	kvBudgetIndex      = "ledger:budgets"
	kvGoalIndex        = "ledger:goals"
	kvInvestmentIndex  = "ledger:investments"
)

// kvLedgerRepository implements adapter.LedgerRepository on redis. Composite
// operations read every record they need first, then stage all mutated
// records on one TxPipeline and flush it with a single Exec. No partial
// write is ever visible.
type kvLedgerRepository struct {
	client *redis.Client
}

// NewKVLedgerRepository creates a new redis-backed ledger repository instance.
func NewKVLedgerRepository(client *redis.Client) adapter.LedgerRepository {
	return &kvLedgerRepository{
		client: client,
	}
}

func accountKey(id uuid.UUID) string     { return kvAccountPrefix + id.String() }
func transactionKey(id uuid.UUID) string { return kvTransactionPrefix + id.String() }
func budgetKey(id uuid.UUID) string      { return kvBudgetPrefix + id.String() }
func goalKey(id uuid.UUID) string        { return kvGoalPrefix + id.String() }
func investmentKey(id uuid.UUID) string  { return kvInvestmentPrefix + id.String() }

// ClearAll removes every entity. Used by backup restore before import.
func (r *kvLedgerRepository) ClearAll(ctx context.Context) error {
	indexes := []string{
		kvAccountIndex,
		kvTransactionIndex,
		kvBudgetIndex,
		kvGoalIndex,
		kvInvestmentIndex,
	}
	prefixes := []string{
		kvAccountPrefix,
		kvTransactionPrefix,
		kvBudgetPrefix,
		kvGoalPrefix,
		kvInvestmentPrefix,
	}

	keys := make([]string, 0, len(indexes))
	for i, index := range indexes {
		ids, err := r.client.SMembers(ctx, index).Result()
		if err != nil {
			return err
		}
		for _, id := range ids {
			keys = append(keys, prefixes[i]+id)
		}
		keys = append(keys, index)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	_, err := pipe.Exec(ctx)
	return err
}

// stageRecord marshals a record and queues the SET on the pipeline.
func stageRecord(ctx context.Context, pipe redis.Pipeliner, key string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	pipe.Set(ctx, key, payload, 0)
	return nil
}

// stageBalance reads the account record, overwrites its balance and queues
// the write-back. The read happens before the pipeline is flushed.
func (r *kvLedgerRepository) stageBalance(ctx context.Context, pipe redis.Pipeliner, accountID uuid.UUID, balance decimal.Decimal) error {
	accountModel, err := r.loadAccountModel(ctx, accountID)
	if err != nil {
		return err
	}
	accountModel.CurrentBalance = balance
	accountModel.UpdatedAt = time.Now().UTC()
	return stageRecord(ctx, pipe, accountKey(accountID), accountModel)
}

func (r *kvLedgerRepository) loadAccountModel(ctx context.Context, id uuid.UUID) (*model.AccountModel, error) {
	payload, err := r.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, err
	}
	var accountModel model.AccountModel
	if err := json.Unmarshal(payload, &accountModel); err != nil {
		return nil, err
	}
	return &accountModel, nil
}

func (r *kvLedgerRepository) loadTransactionModel(ctx context.Context, id uuid.UUID) (*model.TransactionModel, error) {
	payload, err := r.client.Get(ctx, transactionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, err
	}
	var transactionModel model.TransactionModel
	if err := json.Unmarshal(payload, &transactionModel); err != nil {
		return nil, err
	}
	return &transactionModel, nil
}

// loadIndexed fetches every record of one kind via its index set. Missing
// keys are skipped rather than failed: a member without a record means a
// concurrent delete landed between SMembers and MGet.
func loadIndexed[M any](ctx context.Context, client *redis.Client, index, prefix string) ([]M, error) {
	ids, err := client.SMembers(ctx, index).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = prefix + id
	}
	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]M, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var record M
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
