package openai

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTranscriptionModel is the speech-to-text model used when none is set
	DefaultTranscriptionModel = "whisper-1"

	// DefaultChatModel is the chat model used when none is set
	DefaultChatModel = "gpt-4o-mini"

	// ResponseFormatText makes /audio/transcriptions return plain text
	ResponseFormatText = "text"

	// CodeInsufficientQuota is the error code OpenAI returns when billing is exhausted
	CodeInsufficientQuota = "insufficient_quota"
)
