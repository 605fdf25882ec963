package extract

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConvertClientDecodesFirstFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		_ = json.NewEncoder(w).Encode(convertEnvelope{
			Files: []convertFile{
				{FileName: "resume.txt", FileData: base64.StdEncoding.EncodeToString([]byte("hello resume"))},
				{FileName: "ignored.txt", FileData: base64.StdEncoding.EncodeToString([]byte("second"))},
			},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewConvertClient(srv.URL, "secret")
	text, err := client.Extract(context.Background(), []byte("%PDF-1.4"), MimePDF, "resume.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "hello resume" {
		t.Fatalf("text = %q, want %q", text, "hello resume")
	}
}

func TestConvertClientEmptyFilesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(convertEnvelope{})
	}))
	t.Cleanup(srv.Close)

	client := NewConvertClient(srv.URL, "")
	text, err := client.Extract(context.Background(), []byte("data"), MimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty", text)
	}
}

func TestConvertClientNon2xxReturnsExtractionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(srv.Close)

	client := NewConvertClient(srv.URL, "secret")
	_, err := client.Extract(context.Background(), []byte("data"), MimePDF, "resume.pdf")

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("err = %v, want *ExtractionError", err)
	}
	if extractErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d, want 502", extractErr.StatusCode)
	}
	if extractErr.Reason != "upstream unavailable" {
		t.Fatalf("Reason = %q", extractErr.Reason)
	}
}
