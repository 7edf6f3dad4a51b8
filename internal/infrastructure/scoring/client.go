// Package scoring is a client of the remote personality scoring API, the
// source of truth for assessment results.
package scoring

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/service/careerscore"
	"neetup/internal/domain/value"
	"neetup/internal/metrics"
	"neetup/pkg/errcodes"
	"neetup/pkg/httpx"
	"neetup/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const scorePath = "/v1/personality-test/score"

type scoreRequest struct {
	Answers []int `json:"answers"`
}

type scoreResponse struct {
	Results []entity.CareerAreaScore `json:"results"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Options struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	LogFieldMaxLen int
}

func NewClient(opts Options) *Client {
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
	)

	if opts.Token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, opts.Token)
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
}

// Score asks the remote API for the ranked result of a complete answer set.
// Transport failures and non-200 responses are ScoringUnavailable; bodies
// that do not hold a well-formed ranked result are ScoringMalformed.
func (c *Client) Score(ctx context.Context, answers value.AnswerSet) (entity.RankedResult, error) {
	body, err := json.Marshal(scoreRequest{Answers: answers.Ints()})
	if err != nil {
		return entity.RankedResult{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scorePath, bytes.NewReader(body))
	if err != nil {
		return entity.RankedResult{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.httpClient.Do(req)

	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return entity.RankedResult{}, domain.WrapError(
			fmt.Errorf("httpClient.Do: %w", err),
			errcodes.ScoringUnavailable,
			"scoring service unavailable",
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.RankedResult{}, domain.NewError(
			errcodes.ScoringUnavailable,
			fmt.Sprintf("scoring service responded with status %d", resp.StatusCode),
		)
	}

	var payload scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.RankedResult{}, domain.WrapError(
			fmt.Errorf("json.Decode: %w", err),
			errcodes.ScoringMalformed,
			"malformed scoring response",
		)
	}

	result := entity.RankedResult{Areas: payload.Results}
	if err := validateResult(result); err != nil {
		return entity.RankedResult{}, domain.WrapError(err, errcodes.ScoringMalformed, "malformed scoring response")
	}

	return result, nil
}

func validateResult(result entity.RankedResult) error {
	for _, s := range result.Areas {
		if !s.Area.Valid() {
			return errors.New("result without a career area")
		}
	}

	switch len(result.Areas) {
	case 1:
		return nil
	case 2:
		top, second := result.Areas[0], result.Areas[1]

		if top.Area == second.Area {
			return fmt.Errorf("area %q listed twice", top.Area)
		}

		if top.Score < second.Score {
			return fmt.Errorf("results not ordered: %d < %d", top.Score, second.Score)
		}

		if top.Score-second.Score > careerscore.MaxRunnerUpGap {
			return fmt.Errorf("runner-up gap %d exceeds %d", top.Score-second.Score, careerscore.MaxRunnerUpGap)
		}

		return nil
	default:
		return fmt.Errorf("expected 1 or 2 results, got %d", len(result.Areas))
	}
}
