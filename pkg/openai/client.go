package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client implements IOpenAI.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new OpenAI client. The API key is attached to every request
// as a bearer token by an oauth2 transport.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: oauth2.NewClient(context.Background(), src),
	}, nil
}

// WithTimeout bounds every request; 0 leaves requests unbounded.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}

// Transcribe uploads the audio as multipart form data and returns the plain-text transcript.
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (string, error) {
	if req.Audio == nil {
		return "", fmt.Errorf("no audio provided")
	}
	if req.Model == "" {
		req.Model = DefaultTranscriptionModel
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeTranscriptionForm(mw, req))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", pr)
	if err != nil {
		pr.Close()
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	respBody, err := c.do(httpReq)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(respBody)), nil
}

func writeTranscriptionForm(mw *multipart.Writer, req TranscriptionRequest) error {
	part, err := mw.CreateFormFile("file", req.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, req.Audio); err != nil {
		return err
	}

	fields := map[string]string{
		"model":           req.Model,
		"response_format": ResponseFormatText,
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	return mw.Close()
}

// ChatCompletion sends a request to /chat/completions.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = DefaultChatModel
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var result ChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// do sends the request and returns the body of a 2xx response.
// Transport failures are wrapped so callers can inspect them with errors.As.
func (c *Client) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp ErrorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			apiErr.Message = errResp.Error.Message
			apiErr.Type = errResp.Error.Type
			apiErr.Code = errResp.Error.Code
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return nil, apiErr
	}

	return respBody, nil
}
