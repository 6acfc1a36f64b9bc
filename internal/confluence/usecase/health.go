package usecase

import (
	"context"

	"meeting-minutes/internal/confluence"
)

func (uc *implUseCase) Health(ctx context.Context) confluence.HealthOutput {
	missing := uc.cfg.MissingVariables()
	return confluence.HealthOutput{
		Configured:       len(missing) == 0,
		BaseURL:          uc.cfg.BaseURL,
		SpaceKey:         uc.cfg.SpaceKey,
		MissingVariables: missing,
	}
}
