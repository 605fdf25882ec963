package analyses

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

var errAnalysisDown = errors.New("model unavailable")

func newTestRouter(t *testing.T, service *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("userId", int64(1))
		c.Next()
	})
	NewHandler(service).RegisterRoutes(api)
	return router
}

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestAnalyzeEndpointSuccessEnvelope(t *testing.T) {
	service, _, _ := newTestService(&stubExtractor{text: "text"}, &stubLLM{response: cleanJSON})
	router := newTestRouter(t, service)

	body, contentType := multipartUpload(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool           `json:"success"`
		Analysis ClientAnalysis `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("success = false")
	}
	if resp.Analysis.ID == 0 || resp.Analysis.ResumeID == 0 {
		t.Fatalf("missing ids in %+v", resp.Analysis)
	}
	if resp.Analysis.OverallScore != 80 {
		t.Fatalf("overallScore = %d, want 80", resp.Analysis.OverallScore)
	}
}

func TestAnalyzeEndpointRejectsBadType(t *testing.T) {
	service, _, _ := newTestService(&stubExtractor{}, &stubLLM{response: cleanJSON})
	router := newTestRouter(t, service)

	body, contentType := multipartUpload(t, "file", "resume.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != ErrInvalidFileType.Error() {
		t.Fatalf("error = %q", resp["error"])
	}
}

func TestAnalyzeEndpointMissingFile(t *testing.T) {
	service, _, _ := newTestService(&stubExtractor{}, &stubLLM{response: cleanJSON})
	router := newTestRouter(t, service)

	body, contentType := multipartUpload(t, "document", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeEndpointPipelineFailureIsGeneric(t *testing.T) {
	service, _, _ := newTestService(&stubExtractor{text: "text"}, &stubLLM{err: errAnalysisDown})
	router := newTestRouter(t, service)

	body, contentType := multipartUpload(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Analysis failed. Please try again." {
		t.Fatalf("error = %q", resp["error"])
	}
}

func TestGetEndpointNotFound(t *testing.T) {
	service, _, _ := newTestService(&stubExtractor{}, &stubLLM{response: cleanJSON})
	router := newTestRouter(t, service)

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Analysis not found" {
		t.Fatalf("error = %q", resp["error"])
	}
}

func TestHistoryEndpointEnvelope(t *testing.T) {
	service, _, _ := newTestService(&stubExtractor{text: "text"}, &stubLLM{response: cleanJSON})
	router := newTestRouter(t, service)

	body, contentType := multipartUpload(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed upload status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		History []HistoryItem `json:"history"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.History) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(resp.History))
	}
	if resp.History[0].FileName != "resume.pdf" {
		t.Fatalf("fileName = %q", resp.History[0].FileName)
	}
}
