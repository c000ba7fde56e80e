package revalidate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/revalidate"
)

func TestClient_RetryWithBackoff(t *testing.T) {
	client := revalidate.NewClient("https://site.test/api/revalidate", "secret").WithBackoffs(time.Millisecond, time.Millisecond)

	callCount := 0
	err := client.RetryWithBackoff(context.Background(), func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := revalidate.NewClient("https://site.test/api/revalidate", "secret").WithBackoffs(time.Millisecond, time.Millisecond)

	err := client.RetryWithBackoff(context.Background(), func() error {
		return assert.AnError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
}

func TestClient_RetryWithBackoff_Cancelled(t *testing.T) {
	client := revalidate.NewClient("https://site.test/api/revalidate", "secret").WithBackoffs(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.RetryWithBackoff(ctx, func() error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Revalidate(t *testing.T) {
	var got revalidate.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := revalidate.NewClient(server.URL, "secret")
	err := client.Revalidate(context.Background(), "/blog/hello", revalidate.KindPage)

	require.NoError(t, err)
	assert.Equal(t, "/blog/hello", got.Path)
	assert.Equal(t, revalidate.KindPage, got.Type)
}

func TestClient_Revalidate_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := revalidate.NewClient(server.URL, "secret").WithBackoffs(time.Millisecond, time.Millisecond)
	err := client.Revalidate(context.Background(), "/works", revalidate.KindPage)

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_Revalidate_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad secret"))
	}))
	defer server.Close()

	client := revalidate.NewClient(server.URL, "wrong").WithBackoffs(time.Millisecond, time.Millisecond)
	err := client.Revalidate(context.Background(), "/", revalidate.KindLayout)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "bad secret")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_Disabled(t *testing.T) {
	client := revalidate.NewClient("", "")
	assert.False(t, client.Enabled())
	assert.NoError(t, client.Revalidate(context.Background(), "/blog", revalidate.KindPage))
}

func TestParseKind(t *testing.T) {
	kind, err := revalidate.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, revalidate.KindPage, kind)

	kind, err = revalidate.ParseKind("layout")
	require.NoError(t, err)
	assert.Equal(t, revalidate.KindLayout, kind)

	_, err = revalidate.ParseKind("tag")
	assert.Error(t, err)
}
