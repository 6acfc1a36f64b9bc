package wiki

import (
	"context"
	"net/url"

	"meeting-minutes/internal/model"
	"meeting-minutes/pkg/confluence"
	pkgLog "meeting-minutes/pkg/log"
)

// v1Source lists through the legacy offset-paginated /wiki/rest/api endpoints.
// It knows nothing about folders.
type v1Source struct {
	client   *confluence.Client
	maxItems int
	l        pkgLog.Logger
}

func (s *v1Source) Name() string { return "v1" }

func (s *v1Source) ListSpaces(ctx context.Context) ([]model.Space, error) {
	raw, err := confluence.CollectOffset[confluence.Space](ctx, s.client, confluence.PathV1+"/space", nil, v1SpaceLimit, s.maxItems)
	if err != nil {
		return nil, err
	}

	s.l.Debugf(ctx, "wiki.v1.ListSpaces: %d spaces", len(raw))
	return toSpaces(raw), nil
}

func (s *v1Source) ListContent(ctx context.Context, spaceKey string) ([]model.ContentItem, error) {
	q := url.Values{
		"spaceKey": {spaceKey},
		"type":     {"page"},
		"expand":   {"ancestors"},
	}

	raw, err := confluence.CollectOffset[confluence.ContentV1](ctx, s.client, confluence.PathV1+"/content", q, v1ContentLimit, s.maxItems)
	if err != nil {
		return nil, err
	}

	items := make([]model.ContentItem, len(raw))
	for i, c := range raw {
		items[i] = model.ContentItem{
			ID:       c.ID.String(),
			Title:    c.Title,
			Type:     model.ContentTypePage,
			ParentID: c.ParentID(),
		}
		if items[i].ParentID != "" {
			items[i].ParentType = string(model.ContentTypePage)
		}
	}

	s.l.Debugf(ctx, "wiki.v1.ListContent: space=%s pages=%d", spaceKey, len(items))
	return items, nil
}
