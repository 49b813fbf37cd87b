package stores

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vital-be/apperrors"
)

// releaseScript deletes the lock only if it still carries our token, so an expired lock
// taken over by someone else is never released by the old holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisIssueLocker holds per-issue locks in Redis so several API replicas agree on who may
// create a fund request for an issue.
type RedisIssueLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisIssueLocker(client *redis.Client, prefix string, ttl time.Duration) *RedisIssueLocker {
	if prefix == "" {
		prefix = "vital:issue-lock"
	}
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &RedisIssueLocker{client: client, prefix: prefix, ttl: ttl}
}

func (l *RedisIssueLocker) Lock(ctx context.Context, issueID string) (func(), error) {
	key := l.prefix + ":" + issueID
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindBackendUnavailable, "lock service unavailable")
	}
	if !acquired {
		return nil, ErrLocked
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}, nil
}
