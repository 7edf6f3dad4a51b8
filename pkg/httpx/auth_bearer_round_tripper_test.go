package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"neetup/pkg/httpx"
)

func TestAuthBearerRoundTripper(t *testing.T) {
	rq := require.New(t)

	var gotAuthorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := &http.Client{
		Transport: httpx.NewAuthBearerRoundTripper(http.DefaultTransport, "s3cr3t"),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	rq.NoError(err)

	resp, err := client.Do(req)
	rq.NoError(err)
	defer resp.Body.Close()

	rq.Equal("Bearer s3cr3t", gotAuthorization)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode, "unauthorized is passed back")
	rq.Empty(req.Header.Get("Authorization"), "caller request is untouched")
}
