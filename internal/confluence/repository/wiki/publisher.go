package wiki

import (
	"context"

	"meeting-minutes/internal/confluence/repository"
	"meeting-minutes/internal/model"
	"meeting-minutes/pkg/confluence"
	pkgLog "meeting-minutes/pkg/log"
)

type publisher struct {
	client *confluence.Client
	l      pkgLog.Logger
}

// NewPublisher creates a PagePublisher issuing one create-page request per call.
func NewPublisher(client *confluence.Client, l pkgLog.Logger) repository.PagePublisher {
	return &publisher{client: client, l: l}
}

func (p *publisher) CreatePage(ctx context.Context, opt repository.CreatePageOptions) (model.PublishedPage, error) {
	req := confluence.NewCreatePageRequest(opt.SpaceKey, opt.Title, opt.Body, opt.ParentID)

	created, err := p.client.CreatePage(ctx, req)
	if err != nil {
		p.l.Errorf(ctx, "wiki.CreatePage: space=%s: %v", opt.SpaceKey, err)
		return model.PublishedPage{}, err
	}

	return model.PublishedPage{
		PageID: created.ID.String(),
		Title:  created.Title,
		URL:    p.client.PageURL(created.Links.WebUI),
	}, nil
}
