package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Unlock освобождает взятую блокировку
type Unlock func(ctx context.Context) error

// Locker выдает короткую аренду (lease) по ключу
// Если аренда занята другим владельцем, TryLock возвращает ok=false без ошибки
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock Unlock, ok bool, err error)
}

// releaseScript удаляет ключ, только если он принадлежит текущему владельцу
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker аренда на основе SET NX PX
type RedisLocker struct {
	client *redis.Client
	prefix string
}

// NewRedisClient создает клиент по URL вида redis://host:port/db и проверяет соединение
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrConnect, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrConnect, err)
	}

	return client, nil
}

// NewRedisLocker создает locker, все ключи получают префикс prefix
func NewRedisLocker(client *redis.Client, prefix string) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix}
}

// TryLock пытается взять аренду на ttl
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (Unlock, bool, error) {
	fullKey := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: key=%s: %v", ErrAcquire, fullKey, err)
	}
	if !ok {
		return nil, false, nil
	}

	unlock := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
			return fmt.Errorf("%w: key=%s: %v", ErrRelease, fullKey, err)
		}
		return nil
	}

	return unlock, true, nil
}

// NoopLocker всегда выдает аренду, используется при одной реплике или выключенном Redis
type NoopLocker struct{}

// TryLock всегда успешен
func (NoopLocker) TryLock(context.Context, string, time.Duration) (Unlock, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}
