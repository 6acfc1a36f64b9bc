package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"meeting-minutes/internal/confluence"
)

func newSpacesCmd(uc func() confluence.UseCase) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "List the spaces visible to the configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spaces, err := uc().ListSpaces(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(spaces)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tID")
			for _, s := range spaces {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Key, s.Name, s.ID)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
