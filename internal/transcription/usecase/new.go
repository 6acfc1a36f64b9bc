package usecase

import (
	"time"

	"github.com/google/uuid"

	"meeting-minutes/pkg/log"
	"meeting-minutes/pkg/openai"
)

// Options holds the model settings of the pipeline.
type Options struct {
	TranscriptionModel string
	ChatModel          string
	Language           string
	MaxTokens          int
	Temperature        float64
}

// implUseCase is the private implementation of transcription.UseCase.
type implUseCase struct {
	ai    openai.IOpenAI
	opts  Options
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New creates a new transcription UseCase. A nil ai client makes every call
// fail with ErrProviderNotConfigured.
func New(ai openai.IOpenAI, opts Options, l log.Logger) *implUseCase {
	return &implUseCase{
		ai:    ai,
		opts:  opts,
		l:     l,
		now:   time.Now,
		newID: func() string { return "transcript-" + uuid.NewString() },
	}
}
