package transcription

// --- UseCase Inputs ---

type ProcessInput struct {
	// FilePath is the saved upload; ownership passes to Process.
	FilePath string
	// FileName is the client-side name, forwarded to the speech-to-text API
	// so it can infer the container format from the extension.
	FileName string
}
