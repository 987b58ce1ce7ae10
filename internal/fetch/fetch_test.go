package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetcher(client *http.Client) *httpFetcher {
	return &httpFetcher{
		client:       client,
		userAgent:    "forkful-test/1.0",
		maxBodyBytes: 1 << 20,
	}
}

func TestFetch_ReturnsBody(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "forkful-test/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html>recipe page</html>"))
	}))
	defer srv.Close()

	f := testFetcher(srv.Client())
	body, finalURL, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>recipe page</html>", body)
	assert.Equal(t, srv.URL, finalURL)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := testFetcher(srv.Client())
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetch_BodyCapped(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	f := testFetcher(srv.Client())
	f.maxBodyBytes = 128
	body, _, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 128)
}
