package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitApp(t *testing.T, max int) *fiber.App {
	t.Helper()
	srv := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	app := fiber.New()
	app.Use(RateLimit(cache, max, time.Minute))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestRateLimitCapsRequests(t *testing.T) {
	app := rateLimitApp(t, 3)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimitFailsOpenWithoutCache(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(nil, 1, time.Minute))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestLoginRateLimitKeysOnEmail(t *testing.T) {
	srv := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	app := fiber.New()
	app.Post("/login", LoginRateLimit(cache, 2), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	post := func(body string) int {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, post(`{"email":"a@univ.edu"}`))
	assert.Equal(t, fiber.StatusOK, post(`{"email":"a@univ.edu"}`))
	assert.Equal(t, fiber.StatusTooManyRequests, post(`{"email":"a@univ.edu"}`))

	// A different account is not affected.
	assert.Equal(t, fiber.StatusOK, post(`{"email":"b@univ.edu"}`))
}
