package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"meeting-minutes/internal/model"
	"meeting-minutes/internal/transcription"
	"meeting-minutes/pkg/openai"
)

// Process runs speech-to-text then the minutes completion and assembles the transcript.
func (uc *implUseCase) Process(ctx context.Context, input transcription.ProcessInput) (model.Transcript, error) {
	defer uc.removeUpload(ctx, input.FilePath)

	if uc.ai == nil {
		return model.Transcript{}, transcription.ErrProviderNotConfigured
	}

	text, err := uc.transcribe(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process transcribe: %v", err)
		return model.Transcript{}, err
	}
	uc.l.Infof(ctx, "uc.Process: transcribed %d characters", len(text))

	m, err := uc.generateMinutes(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process generateMinutes: %v", err)
		return model.Transcript{}, err
	}

	t := model.Transcript{
		ID:           uc.newID(),
		Title:        m.Title,
		Content:      m.Content,
		Summary:      m.Summary,
		Participants: m.Participants,
		KeyPoints:    m.KeyPoints,
		ActionItems:  m.ActionItems,
		CreatedAt:    uc.now(),
	}
	uc.l.Infof(ctx, "uc.Process: created %s (%d participants, %d key points, %d action items)",
		t.ID, len(t.Participants), len(t.KeyPoints), len(t.ActionItems))
	return t, nil
}

func (uc *implUseCase) transcribe(ctx context.Context, input transcription.ProcessInput) (string, error) {
	f, err := os.Open(input.FilePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", transcription.ErrTranscriptionFailed, err)
	}
	defer f.Close()

	name := input.FileName
	if name == "" {
		name = filepath.Base(input.FilePath)
	}

	text, err := uc.ai.Transcribe(ctx, openai.TranscriptionRequest{
		Audio:    f,
		FileName: name,
		Model:    uc.opts.TranscriptionModel,
		Language: uc.opts.Language,
	})
	if err != nil {
		return "", translateError(ctx, err, transcription.ErrTranscriptionFailed)
	}
	return text, nil
}

func (uc *implUseCase) generateMinutes(ctx context.Context, text string) (minutes, error) {
	resp, err := uc.ai.ChatCompletion(ctx, &openai.ChatRequest{
		Model: uc.opts.ChatModel,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(text, uc.opts.Language)},
		},
		MaxTokens:      uc.opts.MaxTokens,
		Temperature:    uc.opts.Temperature,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return minutes{}, translateError(ctx, err, transcription.ErrMinutesFailed)
	}

	reply := resp.FirstContent()
	if strings.TrimSpace(reply) == "" {
		return minutes{}, fmt.Errorf("%w: empty model response", transcription.ErrMinutesFailed)
	}

	m, err := parseMinutes(reply, text)
	if err != nil {
		return minutes{}, fmt.Errorf("%w: model reply is not valid JSON: %v", transcription.ErrMinutesFailed, err)
	}
	return m, nil
}

// removeUpload deletes the temporary upload. A file that is already gone is fine.
func (uc *implUseCase) removeUpload(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		uc.l.Warnf(ctx, "uc.Process: failed to remove upload %s: %v", path, err)
	}
}
