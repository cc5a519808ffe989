package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uasniff/pkg/acceptlang"
)

func newLanguagesCmd() *cobra.Command {
	var (
		withQuality bool
		supported   []string
		fallback    string
	)

	cmd := &cobra.Command{
		Use:   "languages <accept-language>",
		Short: "List the languages of an Accept-Language header by preference",
		Example: `  uasniff languages "fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7, *;q=0.5"
  uasniff languages --supported en,de --fallback en "fr-CH, de;q=0.8"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(supported) > 0 {
				_, err := fmt.Fprintln(out, acceptlang.Preferred(args[0], supported, fallback))
				return err
			}
			for _, l := range acceptlang.ParseWithQuality(args[0]) {
				line := l.Tag
				if withQuality {
					line += ";q=" + strconv.FormatFloat(l.Quality, 'f', -1, 64)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withQuality, "quality", "q", false, "print the quality of each tag")
	cmd.Flags().StringSliceVar(&supported, "supported", nil, "print only the best match among these languages")
	cmd.Flags().StringVar(&fallback, "fallback", "", "language printed when nothing supported matches")
	return cmd
}
