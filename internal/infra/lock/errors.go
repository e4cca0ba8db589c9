package lock

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к Redis
	ErrConnect = errors.New("lock: failed to connect to redis")

	// ErrAcquire возвращается при ошибке взятия блокировки
	ErrAcquire = errors.New("lock: failed to acquire lease")

	// ErrRelease возвращается при ошибке освобождения блокировки
	ErrRelease = errors.New("lock: failed to release lease")
)
