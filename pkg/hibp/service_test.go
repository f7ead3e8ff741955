package hibp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/passgauge/passgauge/pkg/hibp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CachesResults(t *testing.T) {
	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		_, _ = w.Write([]byte(knownSuffix + ":1337\n"))
	}))
	defer server.Close()

	service := hibp.NewService(testLogger(), server.URL+"/range/", time.Second, time.Minute)

	for i := 0; i < 3; i++ {
		result, err := service.CheckPassword(context.Background(), "password")
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, 1337, result.Count)
	}

	assert.Equal(t, int64(1), atomic.LoadInt64(&requests), "expected a single upstream request")
	assert.Equal(t, 1, service.CacheStats()["total_entries"])
}

func TestService_DoesNotCacheFailures(t *testing.T) {
	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := hibp.NewService(testLogger(), server.URL+"/range/", time.Second, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := service.CheckPassword(context.Background(), "password")
		require.Error(t, err)
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&requests))
}

func TestService_EmptyPassword(t *testing.T) {
	service := hibp.NewService(testLogger(), "http://127.0.0.1:1/range/", time.Second, time.Minute)

	_, err := service.CheckPassword(context.Background(), "")
	assert.ErrorIs(t, err, hibp.ErrEmptyPassword)
}
