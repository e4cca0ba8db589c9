package parameters

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	paramsRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/parameters"
)

// maxDurationMs наибольшее число миллисекунд, которое помещается в time.Duration
const maxDurationMs = math.MaxInt64 / int64(time.Millisecond)

// Service читает параметры из общей таблицы и кэширует их в памяти
type Service struct {
	repo   ParameterRepository
	cache  *cache.Cache
	logger Logger
}

// NewService создает сервис параметров, значения живут в кэше ttl
func NewService(repo ParameterRepository, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// GetDuration возвращает параметр key, заданный в миллисекундах
// При отсутствии параметра, нечисловом, неположительном или не помещающемся в time.Duration значении возвращает def
// Ошибки хранилища не кэшируются, следующий вызов снова пойдет в БД
func (s *Service) GetDuration(ctx context.Context, key string, def time.Duration) time.Duration {
	if cached, found := s.cache.Get(key); found {
		if d, ok := cached.(time.Duration); ok {
			return d
		}
	}

	param, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, paramsRepo.ErrParameterNotFound) {
			s.logger.Debug("GetDuration: parameter %s not found, using default=%s", key, def)
			s.cache.Set(key, def, cache.DefaultExpiration)
			return def
		}
		s.logger.Error("GetDuration: failed to read parameter %s, using default=%s: %v", key, def, err)
		return def
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(param.Value), 10, 64)
	if err != nil || ms <= 0 || ms > maxDurationMs {
		s.logger.Warn("GetDuration: invalid value %q for parameter %s, using default=%s", param.Value, key, def)
		s.cache.Set(key, def, cache.DefaultExpiration)
		return def
	}

	d := time.Duration(ms) * time.Millisecond
	s.cache.Set(key, d, cache.DefaultExpiration)
	return d
}

// Invalidate удаляет значение из кэша
func (s *Service) Invalidate(key string) {
	s.cache.Delete(key)
}
