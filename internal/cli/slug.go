package cli

import (
	"fmt"

	"coursecatalog/internal/slug"

	"github.com/spf13/cobra"
)

// SlugCmd returns the slug command group.
func SlugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slug",
		Short: "Encode and decode course URL slugs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode <title> <id>",
		Short: "Build the slug for a course title and ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slug.Encode(args[0], args[1]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <slug>",
		Short: "Recover the course ID from a slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slug.Decode(args[0]))
			return nil
		},
	})

	return cmd
}
