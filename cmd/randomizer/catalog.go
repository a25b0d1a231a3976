package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/island-randomizer/internal/errors"
)

func (c *cli) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [spirits|rules]",
		Short:     "List the spirits, adversaries and scenarios",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"spirits", "rules"},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}

			out := cmd.OutOrStdout()
			switch section {
			case "spirits":
				return printSpirits(out, c.app.catalog.Spirits)
			case "rules":
				return printRules(out, c.app.catalog.Rules())
			case "":
				if err := printSpirits(out, c.app.catalog.Spirits); err != nil {
					return err
				}
				fmt.Fprintln(out)
				return printRules(out, c.app.catalog.Rules())
			default:
				return errors.InvalidArgumentf("unknown catalog section %q", section)
			}
		},
	}
}
