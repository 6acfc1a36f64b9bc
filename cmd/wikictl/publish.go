package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meeting-minutes/internal/confluence"
	"meeting-minutes/internal/model"
)

func newPublishCmd(uc func() confluence.UseCase) *cobra.Command {
	var (
		spaceKey string
		parentID string
	)

	cmd := &cobra.Command{
		Use:   "publish <transcript.json>",
		Short: "Publish a saved transcript as a new page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			var t model.Transcript
			if err := json.Unmarshal(raw, &t); err != nil {
				return fmt.Errorf("parse transcript: %w", err)
			}

			page, err := uc().Publish(cmd.Context(), confluence.PublishInput{
				Transcript: t,
				SpaceKey:   spaceKey,
				ParentID:   parentID,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Published %q (%s)\n%s\n", page.Title, page.PageID, page.URL)
			return nil
		},
	}
	cmd.Flags().StringVar(&spaceKey, "space", "", "Target space key (defaults to CONFLUENCE_SPACE_KEY)")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent page or folder id")
	return cmd
}
