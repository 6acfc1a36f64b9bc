package openai

import "context"

// IOpenAI defines the speech-to-text and chat operations used by the service.
type IOpenAI interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
