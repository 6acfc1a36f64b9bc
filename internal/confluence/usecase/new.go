package usecase

import (
	"time"

	"meeting-minutes/config"
	"meeting-minutes/internal/confluence/repository"
	pkgLog "meeting-minutes/pkg/log"
)

// implUseCase is the private implementation of confluence.UseCase.
type implUseCase struct {
	spaces    []repository.SpaceSource
	content   []repository.ContentSource
	publisher repository.PagePublisher
	cfg       config.ConfluenceConfig
	loc       *time.Location
	l         pkgLog.Logger
}

// New creates a new confluence UseCase. Sources are tried in the given order.
func New(
	spaces []repository.SpaceSource,
	content []repository.ContentSource,
	publisher repository.PagePublisher,
	cfg config.ConfluenceConfig,
	loc *time.Location,
	l pkgLog.Logger,
) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		spaces:    spaces,
		content:   content,
		publisher: publisher,
		cfg:       cfg,
		loc:       loc,
		l:         l,
	}
}
