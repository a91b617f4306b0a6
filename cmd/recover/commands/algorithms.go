package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashrecover/internal/digest"
)

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the digest algorithms accepted by --algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range digest.Names() {
				marker := ""
				if name == digest.Default {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
			}
			return nil
		},
	}
}
