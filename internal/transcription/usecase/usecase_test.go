package usecase

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-minutes/internal/transcription"
	"meeting-minutes/pkg/log"
	"meeting-minutes/pkg/openai"
)

type fakeAI struct {
	text     string
	sttErr   error
	reply    string
	chatErr  error
	gotAudio string
	gotChat  *openai.ChatRequest
}

func (f *fakeAI) Transcribe(ctx context.Context, req openai.TranscriptionRequest) (string, error) {
	raw, _ := io.ReadAll(req.Audio)
	f.gotAudio = string(raw)
	return f.text, f.sttErr
}

func (f *fakeAI) ChatCompletion(ctx context.Context, req *openai.ChatRequest) (*openai.ChatResponse, error) {
	f.gotChat = req
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return &openai.ChatResponse{Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: f.reply}}}}, nil
}

var testOpts = Options{
	TranscriptionModel: "whisper-1",
	ChatModel:          "gpt-4o-mini",
	Language:           "ko",
	MaxTokens:          4000,
	Temperature:        0.3,
}

func tempUpload(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "1700000000000_meeting.webm")
	require.NoError(t, os.WriteFile(p, []byte("audio"), 0o600))
	return p
}

func newTestUC(ai openai.IOpenAI) *implUseCase {
	uc := New(ai, testOpts, log.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	uc.newID = func() string { return "transcript-fixed" }
	return uc
}

func TestProcessSuccess(t *testing.T) {
	ai := &fakeAI{
		text:  "Kim: let's ship on Friday.",
		reply: "```json\n{\"title\":\"Release\",\"summary\":\"Ship Friday.\",\"participants\":[\"Kim\",\"Lee\"],\"keyPoints\":[\"ship\"],\"actionItems\":\"none\"}\n```",
	}
	path := tempUpload(t)

	got, err := newTestUC(ai).Process(context.Background(), transcription.ProcessInput{FilePath: path, FileName: "meeting.webm"})
	require.NoError(t, err)

	assert.Equal(t, "transcript-fixed", got.ID)
	assert.Equal(t, "Release", got.Title)
	assert.Equal(t, "Kim: let's ship on Friday.", got.Content, "content falls back to the raw transcript")
	assert.Equal(t, []string{"Kim", "Lee"}, got.Participants)
	assert.Equal(t, []string{}, got.ActionItems, "mistyped arrays become empty")
	assert.Equal(t, 2026, got.CreatedAt.Year())

	assert.Equal(t, "audio", ai.gotAudio)
	assert.Equal(t, "gpt-4o-mini", ai.gotChat.Model)
	assert.Equal(t, 4000, ai.gotChat.MaxTokens)
	assert.Contains(t, ai.gotChat.Messages[1].Content, "Kim: let's ship on Friday.")
	assert.Contains(t, ai.gotChat.Messages[1].Content, "Korean")

	assert.NoFileExists(t, path)
}

func TestProcessErrors(t *testing.T) {
	cases := []struct {
		name string
		ai   *fakeAI
		want error
	}{
		{"Auth", &fakeAI{sttErr: &openai.APIError{StatusCode: 401, Message: "bad key"}}, transcription.ErrUpstreamAuth},
		{"Rate Limit", &fakeAI{sttErr: &openai.APIError{StatusCode: 429}}, transcription.ErrUpstreamQuota},
		{"Quota Code", &fakeAI{text: "x", chatErr: &openai.APIError{StatusCode: 403, Code: "insufficient_quota"}}, transcription.ErrUpstreamQuota},
		{"DNS", &fakeAI{sttErr: &net.DNSError{Err: "no such host", Name: "api.openai.com", IsNotFound: true}}, transcription.ErrUpstreamUnavailable},
		{"Dial", &fakeAI{sttErr: &net.OpError{Op: "dial", Err: errors.New("connection refused")}}, transcription.ErrUpstreamUnavailable},
		{"Other STT", &fakeAI{sttErr: &openai.APIError{StatusCode: 500, Message: "boom"}}, transcription.ErrTranscriptionFailed},
		{"Empty Reply", &fakeAI{text: "x", reply: "  "}, transcription.ErrMinutesFailed},
		{"Not JSON", &fakeAI{text: "x", reply: "sorry, I cannot"}, transcription.ErrMinutesFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := tempUpload(t)

			_, err := newTestUC(tc.ai).Process(context.Background(), transcription.ProcessInput{FilePath: path})
			assert.ErrorIs(t, err, tc.want)
			assert.NoFileExists(t, path, "upload must be removed on failure")
		})
	}
}

func TestProcessNotConfigured(t *testing.T) {
	path := tempUpload(t)

	_, err := newTestUC(nil).Process(context.Background(), transcription.ProcessInput{FilePath: path})
	assert.ErrorIs(t, err, transcription.ErrProviderNotConfigured)
	assert.NoFileExists(t, path)
}

func TestProcessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := tempUpload(t)

	_, err := newTestUC(&fakeAI{sttErr: context.Canceled}).Process(ctx, transcription.ProcessInput{FilePath: path})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestParseMinutesDefaults(t *testing.T) {
	m, err := parseMinutes(`{}`, "raw text")
	require.NoError(t, err)

	assert.Equal(t, defaultTitle, m.Title)
	assert.Equal(t, "raw text", m.Content)
	assert.Equal(t, defaultSummary, m.Summary)
	assert.Equal(t, []string{}, m.Participants)
	assert.Equal(t, []string{}, m.KeyPoints)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(` {"a":1} `))
}
