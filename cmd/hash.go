package main

import (
	"context"
	"fmt"
	"hashhush/internal/config"
	"hashhush/internal/cracker"
	"hashhush/pkg/dictionary"
	"hashhush/pkg/domain"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// allAlgorithms makes generate print a digest per fixed algorithm.
const allAlgorithms = "all"

func detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <hash>",
		Short: "Detects the algorithm of a digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cracker.New(cracker.Options{}, nil).Detect(cmd.Context(), args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			printDetection(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func printDetection(w io.Writer, res *domain.Detection) {
	candidates := make([]string, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		candidates = append(candidates, c.String())
	}

	_, _ = fmt.Fprintf(w, "type:       %s\n", res.Fingerprint.Algorithm)
	_, _ = fmt.Fprintf(w, "confidence: %s\n", res.Fingerprint.Confidence)
	if len(candidates) > 1 {
		_, _ = fmt.Fprintf(w, "candidates: %s\n", strings.Join(candidates, ", "))
	}
}

func generateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Computes the digest of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, _ := cmd.Flags().GetString("algorithm")
			c := cracker.New(cracker.NewOptions(cfg), nil)

			return generate(cmd.Context(), cmd.OutOrStdout(), c, args[0], algorithm)
		},
	}

	cmd.Flags().StringP("algorithm", "a", string(domain.AlgorithmMD5),
		`Hash algorithm, or "all" for every unsalted algorithm`)

	return cmd
}

func generate(ctx context.Context, w io.Writer, c cracker.Cracker, text, algorithm string) error {
	if algorithm != allAlgorithms {
		res, err := c.Generate(ctx, text, algorithm)
		if err != nil {
			return err //nolint: wrapcheck
		}
		_, _ = fmt.Fprintln(w, res.Hash)

		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, info := range domain.Algorithms() {
		if info.Value.Adaptive() {
			continue
		}
		res, err := c.Generate(ctx, text, info.Value.String())
		if err != nil {
			return err //nolint: wrapcheck
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", info.Value, res.Hash)
	}

	return tw.Flush() //nolint: wrapcheck
}

func crackCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack <hash>",
		Short: "Recovers the plaintext of a digest by dictionary attack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, _ := cmd.Flags().GetString("algorithm")
			wordlist, _ := cmd.Flags().GetString("wordlist")

			opts := cracker.NewOptions(cfg)
			if cmd.Flags().Changed("workers") {
				opts.Workers, _ = cmd.Flags().GetInt("workers")
			}

			var candidates []string
			if wordlist != "" {
				var err error
				if candidates, err = dictionary.Load(wordlist); err != nil {
					return err //nolint: wrapcheck
				}
			}

			res, err := cracker.New(opts, nil).Crack(cmd.Context(), args[0], algorithm, candidates)
			if err != nil {
				return err //nolint: wrapcheck
			}

			out := cmd.OutOrStdout()
			if !res.Found {
				_, _ = fmt.Fprintf(out, "not found (%s)\n", res.Algorithm)

				return nil
			}
			_, _ = fmt.Fprintf(out, "found (%s): %s\n", res.Algorithm, *res.Password)

			return nil
		},
	}

	cmd.Flags().StringP("algorithm", "a", "", "Hash algorithm; detected from the digest when empty")
	cmd.Flags().StringP("wordlist", "w", "", "Newline separated wordlist; the built-in list is used when empty")
	cmd.Flags().Int("workers", 1, "Goroutines scanning the wordlist (overrides config)")

	return cmd
}

func algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "Lists supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, info := range domain.Algorithms() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Value, info.Name, info.Description)
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}
}
