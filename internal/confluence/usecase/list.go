package usecase

import (
	"context"
	"sort"
	"strings"

	"meeting-minutes/internal/confluence"
	"meeting-minutes/internal/confluence/repository"
	"meeting-minutes/internal/model"
	"meeting-minutes/pkg/contenttree"
)

// ListSpaces returns every visible space ordered by collated name.
func (uc *implUseCase) ListSpaces(ctx context.Context) ([]model.Space, error) {
	spaces, err := tryInOrder(ctx, uc.l, "uc.ListSpaces", uc.spaces, func(s repository.SpaceSource) ([]model.Space, error) {
		return s.ListSpaces(ctx)
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSpaces: %v", err)
		return nil, err
	}

	coll := contenttree.NewCollator(uc.cfg.SortLocale)
	sort.SliceStable(spaces, func(i, j int) bool {
		return coll.CompareString(spaces[i].Name, spaces[j].Name) < 0
	})

	if spaces == nil {
		spaces = []model.Space{}
	}
	return spaces, nil
}

// ListPages returns the annotated content tree of a space in display order.
func (uc *implUseCase) ListPages(ctx context.Context, input confluence.ListPagesInput) ([]model.ContentItem, error) {
	spaceKey := strings.TrimSpace(input.SpaceKey)
	if spaceKey == "" {
		return nil, confluence.ErrSpaceKeyRequired
	}
	if input.View != confluence.ViewAll && input.View != confluence.ViewContainers {
		return nil, confluence.ErrInvalidView
	}

	items, err := tryInOrder(ctx, uc.l, "uc.ListPages", uc.content, func(s repository.ContentSource) ([]model.ContentItem, error) {
		return s.ListContent(ctx, spaceKey)
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPages: space=%s: %v", spaceKey, err)
		return nil, err
	}

	coll := contenttree.NewCollator(uc.cfg.SortLocale)
	tree := contenttree.Build(items, coll)

	out := tree.Items
	if input.ParentID != "" {
		out = tree.ChildrenOf(input.ParentID)
	}
	if input.View == confluence.ViewContainers {
		out = contenttree.ContainersOnly(out)
	}
	contenttree.Sort(out, coll)

	if out == nil {
		out = []model.ContentItem{}
	}
	return out, nil
}
