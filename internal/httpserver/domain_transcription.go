package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"meeting-minutes/internal/middleware"
	transcriptionHTTP "meeting-minutes/internal/transcription/delivery/http"
	transcriptionUC "meeting-minutes/internal/transcription/usecase"
)

// setupTranscriptionDomain wires the audio upload pipeline and registers
// /api/transcription/*.
func (srv HTTPServer) setupTranscriptionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := transcriptionUC.New(srv.openAI, transcriptionUC.Options{
		TranscriptionModel: srv.openAICfg.TranscriptionModel,
		ChatModel:          srv.openAICfg.ChatModel,
		Language:           srv.openAICfg.Language,
		MaxTokens:          srv.openAICfg.MaxTokens,
		Temperature:        srv.openAICfg.Temperature,
	}, srv.l)

	h := transcriptionHTTP.New(srv.l, uc, transcriptionHTTP.UploadConfig{
		Dir:      srv.upload.Dir,
		MaxBytes: srv.upload.MaxSizeMB << 20,
	})
	transcriptionHTTP.RegisterRoutes(api.Group("/transcription"), h, mw)

	if srv.openAI == nil {
		srv.l.Warn(ctx, "OPENAI_API_KEY is not set, uploads will be rejected")
	}
	srv.l.Infof(ctx, "Transcription domain registered")
	return nil
}
