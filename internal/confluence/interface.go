package confluence

import (
	"context"

	"meeting-minutes/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Health reports whether the wiki integration is fully configured.
	Health(ctx context.Context) HealthOutput

	ListSpaces(ctx context.Context) ([]model.Space, error)
	ListPages(ctx context.Context, input ListPagesInput) ([]model.ContentItem, error)
	Publish(ctx context.Context, input PublishInput) (model.PublishedPage, error)
}
