package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/sameunit/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List scripts and their test targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, _ := cmd.Flags().GetString("pattern")
			listings, err := c.app.List(cmd.Context(), args, pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, l := range listings {
				_, _ = fmt.Fprintf(out, "%s (%s)\n", l.Name, l.File)
				if fixtures := fixtureNames(l.Fixtures); len(fixtures) > 0 {
					_, _ = fmt.Fprintf(out, "  fixtures: %s\n", strings.Join(fixtures, ", "))
				}
				for _, test := range l.Tests {
					_, _ = fmt.Fprintf(out, "  %s\n", test)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("pattern", "p", domain.DefaultScriptPattern, "File name pattern of scripts in directories")
	return cmd
}

func fixtureNames(f domain.FixturePresence) []string {
	var names []string
	if f.HasSuiteSetUp {
		names = append(names, domain.SuiteSetUpTarget)
	}
	if f.HasSetUp {
		names = append(names, domain.SetUpTarget)
	}
	if f.HasTearDown {
		names = append(names, domain.TearDownTarget)
	}
	if f.HasSuiteTearDown {
		names = append(names, domain.SuiteTearDownTarget)
	}
	return names
}
