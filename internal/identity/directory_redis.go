package identity

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"credlens/internal/platform/redis"
	id "credlens/pkg/domain"
)

// RedisDirectory is the redis-backed BVN directory. Enrollments have no
// TTL; a BVN stays enrolled until replaced.
type RedisDirectory struct {
	client *redis.Client
}

// NewRedis wraps the shared redis client.
func NewRedis(client *redis.Client) *RedisDirectory {
	return &RedisDirectory{client: client}
}

func (d *RedisDirectory) Lookup(ctx context.Context, userID id.UserID) (id.BVN, error) {
	raw, err := d.client.Get(ctx, directoryKey(userID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrNoBVN
		}
		return "", fmt.Errorf("lookup bvn: %w", err)
	}
	bvn, err := id.ParseBVN(raw)
	if err != nil {
		return "", fmt.Errorf("stored bvn for user %s is invalid: %w", userID, err)
	}
	return bvn, nil
}

func (d *RedisDirectory) Enroll(ctx context.Context, userID id.UserID, bvn id.BVN) error {
	if err := d.client.Set(ctx, directoryKey(userID), string(bvn), 0).Err(); err != nil {
		return fmt.Errorf("enroll bvn: %w", err)
	}
	return nil
}

func directoryKey(userID id.UserID) string {
	return "identity:bvn:" + userID.String()
}
