package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, повторите позже"

// RateLimiterConfig параметры токен-бакета
type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
}

// RateLimiter общий лимит на группу маршрутов (публичный поиск)
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(config.Rate, config.Burst),
	}
}

// RateLimit отвечает 429, когда бакет пуст
func (rl *RateLimiter) RateLimit() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.limiter.Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
