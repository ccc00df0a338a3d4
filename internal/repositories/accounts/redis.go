package accounts

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/theta-arc/internal/redis"
)

const (
	accountKeyPrefix = "account:"
	accountIndexKey  = "accounts:all"
	accountScanMatch = accountKeyPrefix + "*"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis account repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed account repository
func NewRedis(cfg *RedisConfig) (*RedisRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &RedisRepository{redisRepository{client: cfg.Client, clock: c}}, nil
}

// RedisRepository is the Redis implementation. It adds Reindex on top of
// Repository for the repair command.
type RedisRepository struct {
	redisRepository
}

var _ Repository = (*RedisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}

	result, err := r.client.Get(ctx, accountKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("account %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get account")
	}

	acct, err := decodeAccount([]byte(result))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Account: acct}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateAccount(input.Account); err != nil {
		return nil, err
	}
	if _, err := r.SaveMany(ctx, SaveManyInput{Accounts: []*entities.Account{input.Account}}); err != nil {
		return nil, err
	}
	return &SaveOutput{Account: input.Account}, nil
}

func (r *redisRepository) SaveMany(ctx context.Context, input SaveManyInput) (*SaveManyOutput, error) {
	docs := make(map[string][]byte, len(input.Accounts))
	now := r.clock.Now()
	for _, acct := range input.Accounts {
		if err := validateAccount(acct); err != nil {
			return nil, err
		}
		acct.UpdatedAt = now
		data, err := json.Marshal(acct)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal account %s", acct.ID)
		}
		docs[acct.ID] = data
	}
	if len(docs) == 0 {
		return &SaveManyOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for id, data := range docs {
		pipe.Set(ctx, accountKeyPrefix+id, data, 0)
		pipe.SAdd(ctx, accountIndexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save accounts")
	}

	return &SaveManyOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, accountIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list account ids")
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return &ListOutput{Accounts: []*entities.Account{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, accountKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to load accounts")
	}

	out := make([]*entities.Account, 0, len(ids))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err == redis.Nil {
			slog.Warn("Account index points at missing document", "user_id", ids[i])
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load account %s", ids[i])
		}
		acct, err := decodeAccount(data)
		if err != nil {
			slog.Warn("Skipping unreadable account", "user_id", ids[i], "error", err)
			continue
		}
		out = append(out, acct)
	}
	return &ListOutput{Accounts: out}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, accountKeyPrefix+input.ID)
	pipe.SRem(ctx, accountIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete account")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("account %s not found", input.ID)
	}
	return &DeleteOutput{}, nil
}

// Reindex scans account keys and adds any id missing from the index.
// It returns how many ids were added.
func (r *RedisRepository) Reindex(ctx context.Context) (int, error) {
	added := 0
	iter := r.client.Scan(ctx, 0, accountScanMatch, 0).Iterator()
	for iter.Next(ctx) {
		id := iter.Val()[len(accountKeyPrefix):]
		n, err := r.client.SAdd(ctx, accountIndexKey, id).Result()
		if err != nil {
			return added, errors.Wrapf(err, "failed to index account %s", id)
		}
		added += int(n)
	}
	if err := iter.Err(); err != nil {
		return added, errors.Wrap(err, "failed to scan accounts")
	}
	return added, nil
}

func decodeAccount(data []byte) (*entities.Account, error) {
	var acct entities.Account
	if err := json.Unmarshal(data, &acct); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal account")
	}
	return &acct, nil
}
