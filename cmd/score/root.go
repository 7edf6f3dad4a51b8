package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/service/careerscore"
	"neetup/internal/domain/value"
	"neetup/internal/infrastructure/scoring"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type rootOptions struct {
	jsonOutput    bool
	withBreakdown bool
	remoteURL     string
	remoteToken   string
	timeout       time.Duration
}

type output struct {
	Results   []entity.CareerAreaScore `json:"results"`
	Breakdown []entity.CareerAreaScore `json:"breakdown,omitempty"`
	Remote    []entity.CareerAreaScore `json:"remote,omitempty"`
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "score <answer>...",
		Short:         "Rank career areas for personality test answers",
		Long:          "Ranks the four career areas for 15 answers on the 1..5 agreement scale, in statement order.",
		Args:          cobra.ExactArgs(value.StatementCount),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of text")
	cmd.Flags().BoolVar(&opts.withBreakdown, "breakdown", false, "Also print every area score")
	cmd.Flags().StringVar(&opts.remoteURL, "remote", "", "Compare with the remote scoring API at this base URL")
	cmd.Flags().StringVar(&opts.remoteToken, "remote-token", "", "Bearer token for the remote scoring API")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 3*time.Second, "Remote scoring API timeout")

	return cmd
}

func runScore(ctx context.Context, w io.Writer, args []string, opts rootOptions) error {
	values := make([]int, 0, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("statement %d: %q is not a number", i+1, arg)
		}
		values = append(values, v)
	}

	answers, err := value.NewAnswerSet(values)
	if err != nil {
		return fmt.Errorf("value.NewAnswerSet: %w", err)
	}

	result, err := careerscore.Score(answers)
	if err != nil {
		return errors.New(domain.GetMessage(err))
	}

	out := output{Results: result.Areas}

	if opts.withBreakdown {
		out.Breakdown = careerscore.Breakdown(answers)
	}

	if opts.remoteURL != "" {
		client := scoring.NewClient(scoring.Options{
			BaseURL: opts.remoteURL,
			Token:   opts.remoteToken,
			Timeout: opts.timeout,
		})

		remote, err := client.Score(ctx, answers)
		if err != nil {
			return fmt.Errorf("client.Score: %w", err)
		}

		out.Remote = remote.Areas
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("json.Encode: %w", err)
		}

		return nil
	}

	printScores(w, "Recommended", out.Results)
	printScores(w, "Breakdown", out.Breakdown)
	printScores(w, "Remote", out.Remote)

	return nil
}

func printScores(w io.Writer, title string, scores []entity.CareerAreaScore) {
	if len(scores) == 0 {
		return
	}

	fmt.Fprintf(w, "%s:\n", title)

	for _, s := range scores {
		fmt.Fprintf(w, "  %-20s %2d\n", s.Area, s.Score)
	}
}
