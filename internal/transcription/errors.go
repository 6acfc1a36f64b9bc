package transcription

import "errors"

var (
	// Upload validation
	ErrAudioRequired    = errors.New("an audio file is required")
	ErrUnsupportedAudio = errors.New("unsupported audio file type")
	ErrFileTooLarge     = errors.New("audio file is too large")

	// Provider failures
	ErrProviderNotConfigured = errors.New("the AI provider API key is not configured")
	ErrUpstreamAuth          = errors.New("the AI provider rejected the API key")
	ErrUpstreamQuota         = errors.New("the AI provider quota or rate limit was exceeded")
	ErrUpstreamUnavailable   = errors.New("cannot reach the AI provider")
	ErrTranscriptionFailed   = errors.New("speech recognition failed")
	ErrMinutesFailed         = errors.New("meeting minutes generation failed")
)
