package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"meeting-minutes/internal/confluence"
	"meeting-minutes/internal/model"
)

func newPagesCmd(uc func() confluence.UseCase) *cobra.Command {
	var (
		parentID string
		view     string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "pages <spaceKey>",
		Short: "Print the page and folder hierarchy of a space",
		Long: `Print the page and folder hierarchy of a space.

Examples:
  wikictl pages DEV                    # whole tree
  wikictl pages DEV --view containers  # folders, parents and shallow pages
  wikictl pages DEV --parent 12345     # direct children of one item`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := uc().ListPages(cmd.Context(), confluence.ListPagesInput{
				SpaceKey: args[0],
				ParentID: parentID,
				View:     confluence.View(view),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			for _, it := range items {
				fmt.Fprintln(out, formatItem(it))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&parentID, "parent", "", "Only list direct children of this id")
	cmd.Flags().StringVar(&view, "view", "", `"containers" keeps folders, parents and shallow pages`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func formatItem(it model.ContentItem) string {
	marker := "-"
	if it.IsFolder() {
		marker = "+"
	} else if it.HasChildren {
		marker = "*"
	}
	return fmt.Sprintf("%s%s %s (%s)", strings.Repeat("  ", it.Depth), marker, it.Title, it.ID)
}
