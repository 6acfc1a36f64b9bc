package transcription

import (
	"context"

	"meeting-minutes/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process turns an uploaded audio file into a structured transcript.
	// The file at input.FilePath is removed before Process returns, whatever the outcome.
	Process(ctx context.Context, input ProcessInput) (model.Transcript, error)
}
