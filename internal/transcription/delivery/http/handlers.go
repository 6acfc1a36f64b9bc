package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"meeting-minutes/internal/transcription"
	"meeting-minutes/pkg/response"
)

// Upload godoc
// @Summary     Transcribe a meeting recording
// @Description Accepts an audio file, runs speech-to-text and returns structured meeting minutes.
// @Tags        Transcription
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio recording (webm, wav, mp3, mpeg, mp4, m4a, ogg)"
// @Success     200 {object} map[string]interface{} "success and transcript"
// @Failure     400 {object} response.Resp "Missing, oversized or unsupported file"
// @Failure     429 {object} response.Resp "Provider quota exceeded or too many uploads"
// @Failure     502 {object} response.Resp "Provider rejected the API key"
// @Failure     503 {object} response.Resp "Provider unreachable or not configured"
// @Router      /api/transcription/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	path, name, err := h.receiveUpload(c)
	if err != nil {
		h.l.Warnf(ctx, "transcription.Upload receive: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	h.l.Infof(ctx, "transcription.Upload: saved %s", path)

	t, err := h.uc.Process(ctx, transcription.ProcessInput{FilePath: path, FileName: name})
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Success(c, gin.H{"transcript": t})
}

// Health godoc
// @Summary     Transcription service status
// @Tags        Transcription
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /api/transcription/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"message":   "Transcription service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
