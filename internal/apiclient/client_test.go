package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetLocations(t *testing.T) {
	var gotPath, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"locations":["Canada","China","USA"]}`))
	}))
	defer srv.Close()

	locs, err := New(srv.URL + "/").GetLocations(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Canada", "China", "USA"}, locs)
	require.Equal(t, "/api/locations", gotPath)
	_, err = uuid.Parse(gotRequestID)
	require.NoError(t, err, "request id must be a uuid")
}

func TestIsNameValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/names/validity" {
			http.NotFound(w, r)
			return
		}
		name := r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		if name == "invalid name" {
			_, _ = w.Write([]byte(`{"name":"invalid name","valid":false}`))
			return
		}
		_, _ = w.Write([]byte(`{"name":"` + name + `","valid":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	ok, err := c.IsNameValid(context.Background(), "Alice")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.IsNameValid(context.Background(), "invalid name")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":"RATE_LIMITED","message":"too many name checks"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).IsNameValid(context.Background(), "Alice")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnexpectedStatus))
	require.Contains(t, err.Error(), "429")
	require.Contains(t, err.Error(), "too many name checks")
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetLocations(context.Background())
	require.Error(t, err)
}

func TestContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).IsNameValid(ctx, "Alice")
	require.ErrorIs(t, err, context.Canceled)
}
