package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"golang.org/x/time/rate"
)

// RateLimiter token bucket por IP para las rutas de autenticación (frena
// fuerza bruta sobre login/register). Los buckets se crean bajo demanda.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

// NewRateLimiter construye el limitador con rps peticiones/segundo por IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.buckets[ip]
	if !ok {
		l = rate.NewLimiter(rl.rps, rl.burst)
		rl.buckets[ip] = l
	}
	return l
}

// Middleware devuelve el handler Fiber: 429 si la IP agotó su bucket.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.limiterFor(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas peticiones, intente más tarde",
			})
		}
		return c.Next()
	}
}
