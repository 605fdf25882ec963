package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ConvertClient calls an external document-to-text conversion service.
// The service accepts a multipart upload and replies with a JSON envelope
// of base64-encoded output files.
type ConvertClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewConvertClient constructs a ConvertClient with a bounded HTTP client.
func NewConvertClient(baseURL, token string) *ConvertClient {
	return &ConvertClient{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type convertEnvelope struct {
	Files []convertFile `json:"Files"`
}

type convertFile struct {
	FileName string `json:"FileName"`
	FileData string `json:"FileData"`
}

// Extract uploads the document and returns the decoded text of the first
// converted file. An envelope with no files yields empty text, not an error.
func (c *ConvertClient) Extract(ctx context.Context, data []byte, mediaType string, fileName string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("File", fileName)
	if err != nil {
		return "", fmt.Errorf("build conversion request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build conversion request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build conversion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, &body)
	if err != nil {
		return "", fmt.Errorf("build conversion request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("call conversion service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &ExtractionError{StatusCode: resp.StatusCode, Reason: string(bytes.TrimSpace(reason))}
	}

	var envelope convertEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode conversion response: %w", err)
	}
	if len(envelope.Files) == 0 {
		return "", nil
	}

	text, err := base64.StdEncoding.DecodeString(envelope.Files[0].FileData)
	if err != nil {
		return "", fmt.Errorf("decode conversion payload: %w", err)
	}
	return string(text), nil
}

var _ Extractor = (*ConvertClient)(nil)
