package repository

import (
	"context"

	"meeting-minutes/internal/model"
)

// SpaceSource lists the spaces visible to the configured account.
// Implementations target one API generation each and are tried in order.
type SpaceSource interface {
	Name() string
	ListSpaces(ctx context.Context) ([]model.Space, error)
}

// ContentSource lists every page (and, where supported, folder) of a space.
// Depth and HasChildren are left for the hierarchy builder.
type ContentSource interface {
	Name() string
	ListContent(ctx context.Context, spaceKey string) ([]model.ContentItem, error)
}

// PagePublisher creates a page from storage-format markup.
type PagePublisher interface {
	CreatePage(ctx context.Context, opt CreatePageOptions) (model.PublishedPage, error)
}
