// Command wikictl browses Confluence spaces and publishes transcript files
// from the terminal, using the same listing and publishing rules as the API.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"meeting-minutes/config"
	"meeting-minutes/internal/confluence"
	"meeting-minutes/internal/confluence/repository/wiki"
	"meeting-minutes/internal/confluence/usecase"
	pkgConfluence "meeting-minutes/pkg/confluence"
	"meeting-minutes/pkg/log"
)

// loader builds the use case once flags are parsed.
type loader func(verbose bool) (confluence.UseCase, error)

func main() {
	if err := newRootCmd(loadUseCase).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(load loader) *cobra.Command {
	var (
		verbose bool
		uc      confluence.UseCase
	)

	root := &cobra.Command{
		Use:          "wikictl",
		Short:        "Browse Confluence spaces and publish meeting minutes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			uc, err = load(verbose)
			return err
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stdout")

	get := func() confluence.UseCase { return uc }
	root.AddCommand(
		newSpacesCmd(get),
		newPagesCmd(get),
		newPublishCmd(get),
	)
	return root
}

func loadUseCase(verbose bool) (confluence.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.NewNop()
	if verbose {
		l = log.Init(log.ZapConfig{
			Level:    cfg.Logger.Level,
			Mode:     cfg.Logger.Mode,
			Encoding: log.EncodingConsole,
		})
	}

	loc, err := time.LoadLocation(cfg.Environment.Timezone)
	if err != nil {
		loc = time.UTC
	}

	client := pkgConfluence.NewClient(pkgConfluence.Config{
		BaseURL:  cfg.Confluence.BaseURL,
		Email:    cfg.Confluence.Email,
		APIToken: cfg.Confluence.APIToken,
	})
	if cfg.Confluence.Timeout > 0 {
		client.WithHTTPClient(&http.Client{Timeout: cfg.Confluence.Timeout})
	}
	spaces, content := wiki.Sources(client, wiki.Options{
		MaxItems: cfg.Confluence.MaxItems,
		CacheTTL: cfg.Confluence.CacheTTL,
	}, l)

	return usecase.New(spaces, content, wiki.NewPublisher(client, l), cfg.Confluence, loc, l), nil
}
