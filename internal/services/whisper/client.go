// Package whisper calls an OpenAI-compatible audio transcription endpoint.
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	langpkg "biliscribe/internal/language"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1/audio/transcriptions"
	defaultModel       = "whisper-1"
	defaultHTTPTimeout = 600 * time.Second
)

// Config captures the runtime settings required to talk to the
// transcription service.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Language       string
	TimeoutSeconds int
}

// Client wraps the transcription API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a transcription client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			Model:          strings.TrimSpace(cfg.Model),
			Language:       strings.TrimSpace(cfg.Language),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.Model == "" {
		client.cfg.Model = defaultModel
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Model returns the configured model name for logging.
func (c *Client) Model() string {
	return c.cfg.Model
}

type transcriptionResponse struct {
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Transcribe uploads the audio file and returns the transcribed text.
// An empty result is an error; callers rely on non-empty text.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if strings.TrimSpace(audioPath) == "" {
		return "", errors.New("transcribe: audio path required")
	}
	if c.cfg.APIKey == "" {
		return "", errors.New("transcribe: api key required")
	}

	body, contentType, err := c.encodeForm(audioPath)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, body)
	if err != nil {
		return "", fmt.Errorf("transcribe: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe: http error: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("transcribe: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcribe: http %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var decoded transcriptionResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("transcribe: decode response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("transcribe: api error: %s", strings.TrimSpace(decoded.Error.Message))
	}
	text := strings.TrimSpace(decoded.Text)
	if text == "" {
		return "", errors.New("transcribe: empty text result")
	}
	return text, nil
}

func (c *Client) encodeForm(audioPath string) (io.Reader, string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, "", fmt.Errorf("transcribe: open audio: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, "", fmt.Errorf("transcribe: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("transcribe: copy audio: %w", err)
	}
	if err := writer.WriteField("model", c.cfg.Model); err != nil {
		return nil, "", fmt.Errorf("transcribe: write model field: %w", err)
	}
	if lang := langpkg.ToISO2(c.cfg.Language); lang != "" {
		if err := writer.WriteField("language", lang); err != nil {
			return nil, "", fmt.Errorf("transcribe: write language field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("transcribe: finalize form: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
