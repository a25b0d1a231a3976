package profile

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
	redisclient "github.com/KirkDiggler/island-randomizer/internal/redis"
)

const (
	// Key pattern: profile:{id}
	profileKeyPrefix = "profile:"
	// Set of every stored profile ID
	profileIndexKey = "profiles"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a profile repository backed by Redis
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, profileKeyPrefix+input.Profile.ID, data, 0)
	pipe.SAdd(ctx, profileIndexKey, input.Profile.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeError(err, "failed to save profile")
	}

	return &SaveOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	result, err := r.client.Get(ctx, profileKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("profile %s not found", input.ID).WithMeta("profile_id", input.ID)
		}
		return nil, storeError(err, "failed to get profile")
	}

	var p entities.Profile
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile %s", input.ID)
	}

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, profileIndexKey).Result()
	if err != nil {
		return nil, storeError(err, "failed to list profile ids")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeError(err, "failed to load profiles")
	}

	profiles := make([]*entities.Profile, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a profile key
			continue
		}
		var p entities.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal profile %s", ids[i])
		}
		profiles = append(profiles, &p)
	}
	sortProfiles(profiles)

	return &ListOutput{Profiles: profiles}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, profileKeyPrefix+input.ID)
	pipe.SRem(ctx, profileIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeError(err, "failed to delete profile")
	}

	if deleted.Val() == 0 {
		return nil, errors.NotFoundf("profile %s not found", input.ID).WithMeta("profile_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

// storeError keeps cancellation and deadlines distinct from an unreachable
// server
func storeError(err error, message string) *errors.Error {
	if ctxErr := errors.FromContext(err); ctxErr != nil {
		return errors.Wrap(ctxErr, message)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, message)
}
