package http

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-minutes/internal/transcription"
)

const (
	formFieldAudio = "audio"

	// multipartOverhead leaves room for boundaries and part headers on top of the file itself.
	multipartOverhead = 1 << 20
)

var allowedMimeTypes = map[string]struct{}{
	"audio/webm": {},
	"audio/wav":  {},
	"audio/mp3":  {},
	"audio/mpeg": {},
	"audio/mp4":  {},
	"audio/m4a":  {},
	"audio/ogg":  {},
}

// receiveUpload validates the multipart audio field and saves it into the
// upload directory as <unixms>_<name><ext>. It returns the saved path and the
// original file name.
func (h *handler) receiveUpload(c *gin.Context) (string, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.upload.MaxBytes+multipartOverhead)

	fh, err := c.FormFile(formFieldAudio)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return "", "", transcription.ErrFileTooLarge
		}
		return "", "", transcription.ErrAudioRequired
	}

	if fh.Size > h.upload.MaxBytes {
		return "", "", transcription.ErrFileTooLarge
	}
	if !isAllowedAudio(fh) {
		return "", "", transcription.ErrUnsupportedAudio
	}

	if err := os.MkdirAll(h.upload.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst := filepath.Join(h.upload.Dir, storedName(fh.Filename, time.Now()))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		os.Remove(dst)
		return "", "", fmt.Errorf("failed to save upload: %w", err)
	}

	return dst, filepath.Base(fh.Filename), nil
}

func isAllowedAudio(fh *multipart.FileHeader) bool {
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	_, ok := allowedMimeTypes[strings.ToLower(mediaType)]
	return ok
}

// storedName builds a collision-resistant file name from the client-side one.
func storedName(original string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" {
		base = "audio"
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%d_%s%s", now.UnixMilli(), name, ext)
}
