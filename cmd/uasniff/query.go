package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newIsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "is <category> <user-agent>",
		Short: "Check a user agent against one category",
		Long: `Check a user agent against any known device, operating system, browser
or utility category, such as iPhone, AndroidOS, Chrome or Bot. The category
is matched case-insensitively.`,
		Example: `  uasniff is iPad "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) ..."`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.detector.Is(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return err
		},
	}
}

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <isMethod> <user-agent>",
		Short: "Run a named check such as isMobile or isiPhone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.detector.Call(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return err
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	var asFloat bool

	cmd := &cobra.Command{
		Use:   "version <property> <user-agent>",
		Short: "Read the version of a platform or browser",
		Long: `Read the version of a property such as iOS, Windows or Chrome from a
user agent. Nothing is printed when the property has no version in it.`,
		Example: `  uasniff version Chrome "Mozilla/5.0 (Windows NT 10.0; Win64; x64) ... Chrome/91.0.4472.124 ..."
  uasniff version --float iOS "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) ..."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			if asFloat {
				out = strconv.FormatFloat(a.detector.VersionFloat(args[0], args[1]), 'f', -1, 64)
			} else {
				out = a.detector.Version(args[0], args[1])
			}
			if out == "" {
				return nil
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asFloat, "float", false, "print major.minor as a number")
	return cmd
}
