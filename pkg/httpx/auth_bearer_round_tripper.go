package httpx

import (
	"fmt"
	"net/http"
)

// AuthBearerRoundTripper sends a fixed bearer token with every request.
// Responses, Unauthorized included, are passed back unchanged.
type AuthBearerRoundTripper struct {
	next  http.RoundTripper
	token string
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	token string,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:  next,
		token: token,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// A RoundTripper must not modify the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+rt.token)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
