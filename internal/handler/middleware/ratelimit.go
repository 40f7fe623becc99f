package middleware

import (
	"net/http"

	"vetclinic-booking-api/internal/handler/httperr"
	"vetclinic-booking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimitMiddleware throttles per client IP with an in-memory counter.
// A single-process store is enough here; a multi-instance deployment would
// swap in the redis store behind the same limiter interface.
func NewRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: cfg.Period,
		Limit:  cfg.Requests,
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithCode(c, http.StatusTooManyRequests, httperr.CodeRateLimited,
				"Too many requests, please try again later", nil)
		}),
	)
}
