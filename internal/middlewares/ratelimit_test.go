package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(m *MockLimiter)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "Allowed",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "Denied",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(false, nil)
			},
			expectedStatus:   http.StatusTooManyRequests,
			expectNextCalled: false,
		},
		{
			name: "LimiterErrorFailsOpen",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(false, errors.New("redis down"))
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLimiter := NewMockLimiter(ctrl)
			tt.mockSetup(mockLimiter)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RateLimitMiddleware(mockLimiter)(next)

			// httptest sets RemoteAddr to 192.0.2.1:1234
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	limiter := NewRedisLimiter(client, "test", 3, time.Minute)

	// First three requests fit the window, the fourth does not.
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different key has its own counter.
	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}
