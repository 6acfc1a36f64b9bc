package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-minutes/config"
	"meeting-minutes/internal/middleware"
	"meeting-minutes/internal/model"
	"meeting-minutes/internal/transcription"
	transcriptionHTTP "meeting-minutes/internal/transcription/delivery/http"
	"meeting-minutes/internal/transcription/usecase"
	"meeting-minutes/pkg/log"
	"meeting-minutes/pkg/openai"
)

type fakeUseCase struct {
	input   transcription.ProcessInput
	existed bool
	out     model.Transcript
	err     error
}

func (f *fakeUseCase) Process(ctx context.Context, input transcription.ProcessInput) (model.Transcript, error) {
	f.input = input
	_, statErr := os.Stat(input.FilePath)
	f.existed = statErr == nil
	os.Remove(input.FilePath)
	return f.out, f.err
}

type stubAI struct{ err error }

func (s stubAI) Transcribe(ctx context.Context, req openai.TranscriptionRequest) (string, error) {
	return "", s.err
}

func (s stubAI) ChatCompletion(ctx context.Context, req *openai.ChatRequest) (*openai.ChatResponse, error) {
	return nil, s.err
}

func newRouter(uc transcription.UseCase, dir string, maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()

	r := gin.New()
	mw := middleware.New(l, config.CORSConfig{}, config.UploadConfig{})
	h := transcriptionHTTP.New(l, uc, transcriptionHTTP.UploadConfig{Dir: dir, MaxBytes: maxBytes})
	transcriptionHTTP.RegisterRoutes(r.Group("/api/transcription"), h, mw)
	return r
}

func audioRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	part.Write(data)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcription/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestUploadSuccess(t *testing.T) {
	dir := t.TempDir()
	uc := &fakeUseCase{out: model.Transcript{ID: "transcript-1", Title: "Weekly", Participants: []string{"Kim"}}}
	r := newRouter(uc, dir, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, audioRequest(t, "audio", "meeting.webm", "audio/webm;codecs=opus", []byte("data")))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "transcript-1", body["transcript"].(map[string]any)["id"])

	assert.True(t, uc.existed, "file must be saved before processing")
	assert.Equal(t, "meeting.webm", uc.input.FileName)
	assert.Regexp(t, `/\d+_meeting\.webm$`, uc.input.FilePath)
}

func TestUploadRejected(t *testing.T) {
	cases := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{"Unsupported Type", func(t *testing.T) *http.Request {
			return audioRequest(t, "audio", "notes.txt", "text/plain", []byte("data"))
		}},
		{"Wrong Field", func(t *testing.T) *http.Request {
			return audioRequest(t, "file", "meeting.webm", "audio/webm", []byte("data"))
		}},
		{"Too Large", func(t *testing.T) *http.Request {
			return audioRequest(t, "audio", "meeting.wav", "audio/wav", bytes.Repeat([]byte("a"), 2048))
		}},
		{"Not Multipart", func(t *testing.T) *http.Request {
			return httptest.NewRequest(http.MethodPost, "/api/transcription/upload", bytes.NewBufferString("{}"))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			r := newRouter(uc, t.TempDir(), 1024)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tc.req(t))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
			assert.Empty(t, uc.input.FilePath, "use case must not run")
		})
	}
}

func TestUploadProviderErrors(t *testing.T) {
	cases := []struct {
		name   string
		ai     openai.IOpenAI
		status int
	}{
		{"Not Configured", nil, http.StatusServiceUnavailable},
		{"Auth", stubAI{err: &openai.APIError{StatusCode: 401}}, http.StatusBadGateway},
		{"Quota", stubAI{err: &openai.APIError{StatusCode: 429}}, http.StatusTooManyRequests},
		{"Other", stubAI{err: &openai.APIError{StatusCode: 500, Message: "boom"}}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			uc := usecase.New(tc.ai, usecase.Options{}, log.NewNop())
			r := newRouter(uc, dir, 1<<20)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, audioRequest(t, "audio", "meeting.mp3", "audio/mpeg", []byte("data")))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, false, decode(t, w)["success"])

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "temporary upload must be deleted")
		})
	}
}

func TestHealth(t *testing.T) {
	r := newRouter(&fakeUseCase{}, t.TempDir(), 1024)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transcription/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
}
