package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	adapter "agrilease/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimitMiddleware_AllowsWithinBudget(t *testing.T) {
	e := echo.New()
	e.Use(adapter.RateLimitMiddleware(rate.Limit(100), 5))
	e.GET("/ping", func(ctx echo.Context) error {
		return ctx.NoContent(nethttp.StatusOK)
	})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))
		assert.Equal(t, nethttp.StatusOK, rec.Code)
	}
}

func TestRateLimitMiddleware_RejectsBurstOverflow(t *testing.T) {
	e := echo.New()
	// No refill to speak of within the test, so the burst is the budget.
	e.Use(adapter.RateLimitMiddleware(rate.Limit(0.001), 2))
	e.GET("/ping", func(ctx echo.Context) error {
		return ctx.NoContent(nethttp.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{nethttp.StatusOK, nethttp.StatusOK, nethttp.StatusTooManyRequests}, codes)
}

func TestRateLimitMiddleware_SeparateBudgetPerClient(t *testing.T) {
	e := echo.New()
	e.Use(adapter.RateLimitMiddleware(rate.Limit(0.001), 1))
	e.GET("/ping", func(ctx echo.Context) error {
		return ctx.NoContent(nethttp.StatusOK)
	})

	request := func(ip string) int {
		req := httptest.NewRequest(nethttp.MethodGet, "/ping", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, nethttp.StatusOK, request("10.0.0.1"))
	assert.Equal(t, nethttp.StatusTooManyRequests, request("10.0.0.1"))
	assert.Equal(t, nethttp.StatusOK, request("10.0.0.2"))
}
