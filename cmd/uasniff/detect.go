package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uasniff/pkg/logger"
	"github.com/dmitrymomot/uasniff/pkg/useragent"
)

func newDetectCmd(a *app) *cobra.Command {
	var (
		headers []string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "detect [user-agent]",
		Short: "Classify a user agent",
		Long: `Classify a user agent and print the result as JSON.

The user agent is taken from the argument, from --header values, or, when
neither is given, from standard input with one user agent per line.`,
		Example: `  uasniff detect "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) ..."
  uasniff detect -H "User-Agent: Opera/9.80" -H "X-OperaMini-Phone-UA: Nokia6230"
  cat agents.txt | uasniff detect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}

			if len(args) == 0 && len(headers) == 0 {
				return a.detectLines(cmd, enc)
			}

			h, err := parseHeaders(headers)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				h.Set("User-Agent", args[0])
			}
			ua, err := a.detector.Detect(h)
			if err != nil && !errors.Is(err, useragent.ErrEmptyUserAgent) {
				return err
			}
			if err != nil {
				a.log.WarnContext(cmd.Context(), "no user agent in input", logger.Error(err))
			}
			return enc.Encode(ua)
		},
	}

	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, `request header as "Name: value" (repeatable)`)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

// detectLines classifies every non-blank line of stdin.
func (a *app) detectLines(cmd *cobra.Command, enc *json.Encoder) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ua, err := a.detector.Parse(line)
		if err != nil {
			return err
		}
		if err := enc.Encode(ua); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func parseHeaders(values []string) (http.Header, error) {
	h := make(http.Header, len(values))
	for _, v := range values {
		name, value, ok := strings.Cut(v, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: want \"Name: value\"", v)
		}
		h.Add(name, strings.TrimSpace(value))
	}
	return h, nil
}
