package wiki

import (
	"context"
	"net/url"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-minutes/internal/model"
	"meeting-minutes/pkg/confluence"
	pkgLog "meeting-minutes/pkg/log"
)

// v2Source lists through the cursor-paginated /wiki/api/v2 endpoints.
type v2Source struct {
	client   *confluence.Client
	maxItems int
	spaceIDs *expirable.LRU[string, string]
	l        pkgLog.Logger
}

func (s *v2Source) Name() string { return "v2" }

func (s *v2Source) ListSpaces(ctx context.Context) ([]model.Space, error) {
	raw, err := confluence.CollectCursor[confluence.Space](ctx, s.client, confluence.PathV2+"/spaces", nil, v2SpaceLimit, s.maxItems)
	if err != nil {
		return nil, err
	}

	s.l.Debugf(ctx, "wiki.v2.ListSpaces: %d spaces", len(raw))
	return toSpaces(raw), nil
}

// ListContent merges every page of the space with the folders that could be
// discovered. Folder discovery never fails the listing.
func (s *v2Source) ListContent(ctx context.Context, spaceKey string) ([]model.ContentItem, error) {
	spaceID, err := s.spaceID(ctx, spaceKey)
	if err != nil {
		return nil, err
	}

	pages, err := confluence.CollectCursor[confluence.ContentV2](ctx, s.client,
		confluence.PathV2+"/spaces/"+url.PathEscape(spaceID)+"/pages", nil, v2PageLimit, s.maxItems)
	if err != nil {
		return nil, err
	}

	folders := s.folders(ctx, spaceID)
	s.l.Debugf(ctx, "wiki.v2.ListContent: space=%s pages=%d folders=%d", spaceKey, len(pages), len(folders))

	items := make([]model.ContentItem, 0, len(pages)+len(folders))
	seen := make(map[string]struct{}, len(pages)+len(folders))
	for _, group := range [][]confluence.ContentV2{pages, folders} {
		for _, c := range group {
			id := c.ID.String()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			items = append(items, fromV2(c))
		}
	}
	return items, nil
}

// spaceID resolves a space key through the v1 API, which is the only
// generation that addresses spaces by key.
func (s *v2Source) spaceID(ctx context.Context, spaceKey string) (string, error) {
	if id, ok := s.spaceIDs.Get(spaceKey); ok {
		return id, nil
	}

	space, err := s.client.GetSpace(ctx, spaceKey)
	if err != nil {
		return "", err
	}

	id := space.ID.String()
	s.spaceIDs.Add(spaceKey, id)
	return id, nil
}

// folders collects folder items two ways: typed entries of the space-wide page
// scan, then the dedicated folder listing. Failures are logged and skipped.
func (s *v2Source) folders(ctx context.Context, spaceID string) []confluence.ContentV2 {
	var out []confluence.ContentV2
	seen := make(map[string]struct{})
	add := func(c confluence.ContentV2) {
		if _, dup := seen[c.ID.String()]; dup {
			return
		}
		seen[c.ID.String()] = struct{}{}
		if c.Type == "" {
			c.Type = string(model.ContentTypeFolder)
		}
		out = append(out, c)
	}

	q := url.Values{"space-id": {spaceID}}

	scanned, err := confluence.CollectCursor[confluence.ContentV2](ctx, s.client, confluence.PathV2+"/pages", q, v2FolderLimit, folderScanCap)
	if err != nil {
		s.l.Warnf(ctx, "wiki.v2.folders: page scan failed: %v", err)
	}
	for _, c := range scanned {
		if c.Type == string(model.ContentTypeFolder) {
			add(c)
		}
	}

	listed, err := confluence.CollectCursor[confluence.ContentV2](ctx, s.client, confluence.PathV2+"/folders", q, v2FolderLimit, s.maxItems)
	if err != nil {
		s.l.Warnf(ctx, "wiki.v2.folders: folder listing failed: %v", err)
	}
	for _, c := range listed {
		add(c)
	}

	return out
}

func fromV2(c confluence.ContentV2) model.ContentItem {
	typ := model.ContentType(c.Type)
	if typ == "" {
		typ = model.ContentTypePage
	}
	return model.ContentItem{
		ID:         c.ID.String(),
		Title:      c.Title,
		Type:       typ,
		ParentID:   c.ParentID.String(),
		ParentType: c.ParentType,
		Position:   c.Position,
	}
}

func toSpaces(raw []confluence.Space) []model.Space {
	out := make([]model.Space, len(raw))
	for i, sp := range raw {
		out[i] = model.Space{Key: sp.Key, Name: sp.Name, ID: sp.ID.String()}
	}
	return out
}
