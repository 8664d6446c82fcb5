package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/elouannasse/youshop-client/internal/domain"
)

// Redis persists the cart as one JSON value per owner. Useful when
// the same cart should be reachable from several client processes;
// like the file persister, concurrent writers are last-writer-wins.
type Redis struct {
	client redis.UniversalClient
	key    string
}

func NewRedis(client redis.UniversalClient, ownerID string) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &Redis{
		client: client,
		key:    "cart:" + ownerID,
	}, nil
}

func (r *Redis) Load(ctx context.Context) (domain.CartState, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CartState{}, false, nil
	}
	if err != nil {
		return domain.CartState{}, false, fmt.Errorf("client.Get: %w", err)
	}

	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.CartState{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return state, true, nil
}

func (r *Redis) Save(ctx context.Context, state domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}
	return nil
}
