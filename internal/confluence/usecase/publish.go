package usecase

import (
	"context"
	"errors"
	"strings"

	"meeting-minutes/internal/confluence"
	"meeting-minutes/internal/confluence/repository"
	"meeting-minutes/internal/confluence/storage"
	"meeting-minutes/internal/model"
	pkgConfluence "meeting-minutes/pkg/confluence"
)

// Publish renders the transcript and creates it as a page.
func (uc *implUseCase) Publish(ctx context.Context, input confluence.PublishInput) (model.PublishedPage, error) {
	t := input.Transcript
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Content) == "" {
		return model.PublishedPage{}, confluence.ErrTitleContentEmpty
	}

	spaceKey := strings.TrimSpace(input.SpaceKey)
	if spaceKey == "" {
		spaceKey = uc.cfg.SpaceKey
	}
	if spaceKey == "" {
		return model.PublishedPage{}, confluence.ErrSpaceKeyRequired
	}

	page, err := uc.publisher.CreatePage(ctx, repository.CreatePageOptions{
		SpaceKey: spaceKey,
		ParentID: strings.TrimSpace(input.ParentID),
		Title:    t.Title,
		Body:     storage.Render(t, uc.loc),
	})
	if err != nil {
		if errors.Is(err, pkgConfluence.ErrNotConfigured) {
			return model.PublishedPage{}, confluence.ErrNotConfigured
		}
		uc.l.Errorf(ctx, "uc.Publish: space=%s: %v", spaceKey, err)
		return model.PublishedPage{}, err
	}

	uc.l.Infof(ctx, "uc.Publish: created page %s in %s", page.PageID, spaceKey)
	return page, nil
}
