package middleware

import (
	"net/http"

	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/musictags/tagchart/internal/request"
)

const defaultRatelimitRate = "20-S"

// RateLimit returns middleware that limits requests per client IP using
// ulule/limiter with an in-memory store. The app holds no external state,
// so there is no shared store to coordinate through; per-process limits
// are enough. rate uses limiter's formatted syntax, e.g. "20-S".
func RateLimit(rate string) (func(http.Handler) http.Handler, error) {
	if rate == "" {
		rate = defaultRatelimitRate
	}
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memorystore.NewStore(), parsed)
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler, nil
}
