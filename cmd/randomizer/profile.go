package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/island-randomizer/internal/repositories/profile"
)

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved view settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved profiles, most recent first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out, err := c.app.profiles.List(cmd.Context(), profile.ListInput{})
				if err != nil {
					return err
				}
				return printProfiles(cmd.OutOrStdout(), out.Profiles)
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print a profile as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := c.app.profiles.Get(cmd.Context(), profile.GetInput{ID: args[0]})
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Profile)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := c.app.profiles.Delete(cmd.Context(), profile.DeleteInput{ID: args[0]}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted profile %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
