package analyses

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"
	"time"

	"resumescore-backend/internal/extract"
	"resumescore-backend/internal/llm"
	"resumescore-backend/internal/resumes"
	"resumescore-backend/internal/shared/metrics"
	"resumescore-backend/internal/shared/storage/object"
	"resumescore-backend/internal/shared/telemetry"
	"resumescore-backend/internal/shared/util"
)

// Service runs the upload-to-result analysis pipeline. Stages execute
// strictly sequentially within a request; there is no retry at this layer.
type Service struct {
	resumes   resumes.Repo
	repo      Repo
	store     object.ObjectStore
	extractor extract.Extractor
	llm       llm.Client
}

// NewService constructs a Service. store may be nil to skip raw-file retention.
func NewService(resumesRepo resumes.Repo, repo Repo, store object.ObjectStore, extractor extract.Extractor, llmClient llm.Client) *Service {
	return &Service{
		resumes:   resumesRepo,
		repo:      repo,
		store:     store,
		extractor: extractor,
		llm:       llmClient,
	}
}

// Analyze validates the upload, extracts text, scores it and persists the
// result. A degraded result (fallback after unusable model output) is still
// persisted and returned on the success path, flagged via Degraded.
func (s *Service) Analyze(ctx context.Context, userID int64, file UploadedFile) (ClientAnalysis, error) {
	start := time.Now()

	if err := ValidateUpload(file.MediaType, file.Size); err != nil {
		metrics.IncUploadRejected()
		return ClientAnalysis{}, err
	}
	metrics.IncUpload()

	ext := "docx"
	if file.MediaType == extract.MimePDF {
		ext = "pdf"
	}
	originalName, err := util.SanitizeFileName(file.Name)
	if err != nil {
		originalName = "resume." + ext
	}
	storageName := fmt.Sprintf("resume_%d.%s", time.Now().UnixMilli(), ext)

	resume, err := s.resumes.Create(ctx, resumes.Resume{
		UserID:           userID,
		Filename:         storageName,
		OriginalFilename: originalName,
		FileSize:         file.Size,
		FileType:         file.MediaType,
		Status:           resumes.StatusUploaded,
	})
	if err != nil {
		metrics.IncAnalysisFailed()
		return ClientAnalysis{}, fmt.Errorf("create resume record: %w", err)
	}

	s.setStatus(ctx, resume.ID, resumes.StatusProcessing)

	if s.store != nil {
		key := path.Join(util.HashUserKey(strconv.FormatInt(userID, 10)), storageName)
		if _, err := s.store.Save(ctx, key, file.MediaType, bytes.NewReader(file.Data)); err != nil {
			metrics.IncAnalysisFailed()
			return ClientAnalysis{}, fmt.Errorf("store resume file: %w", err)
		}
	}

	// Empty extracted text is tolerated; the model call still happens.
	text, err := s.extractor.Extract(ctx, file.Data, file.MediaType, originalName)
	if err != nil {
		metrics.IncAnalysisFailed()
		return ClientAnalysis{}, fmt.Errorf("extract text: %w", err)
	}

	raw, err := s.llm.Complete(ctx, llm.BuildAnalysisPrompt(text))
	if err != nil {
		metrics.IncAnalysisFailed()
		return ClientAnalysis{}, fmt.Errorf("analysis request: %w", err)
	}

	result, degraded := Normalize(raw)
	if degraded {
		metrics.IncAnalysisDegraded()
		telemetry.Warn("analysis.degraded", map[string]any{
			"resume_id":  resume.ID,
			"user_id":    userID,
			"raw_length": len(raw),
		})
	}

	rec, err := s.repo.CreateResult(ctx, Record{
		ResumeID:          resume.ID,
		UserID:            userID,
		OverallScore:      result.OverallScore,
		ImpactScore:       result.CategoryScores.Impact,
		PresentationScore: result.CategoryScores.Presentation,
		CompetenciesScore: result.CategoryScores.Competencies,
		ATSScore:          result.ATSScore,
		Degraded:          degraded,
		Result:            result,
		OriginalFilename:  resume.OriginalFilename,
		UploadDate:        resume.UploadDate,
	})
	if err != nil {
		metrics.IncAnalysisFailed()
		return ClientAnalysis{}, fmt.Errorf("persist analysis: %w", err)
	}

	s.setStatus(ctx, resume.ID, resumes.StatusAnalyzed)

	metrics.IncAnalysisCompleted()
	metrics.ObservePipelineDurationMs(float64(time.Since(start).Milliseconds()))
	telemetry.Info("analysis.complete", map[string]any{
		"resume_id":     resume.ID,
		"analysis_id":   rec.ID,
		"user_id":       userID,
		"overall_score": rec.OverallScore,
		"degraded":      degraded,
		"duration_ms":   time.Since(start).Milliseconds(),
	})

	return FormatRecord(rec), nil
}

// Get returns one analysis scoped to the user.
func (s *Service) Get(ctx context.Context, userID, id int64) (ClientAnalysis, error) {
	rec, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return ClientAnalysis{}, err
	}
	return FormatRecord(rec), nil
}

// History returns the user's analyses, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]HistoryItem, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FormatHistory(recs), nil
}

// Status updates are fire-and-forget from the pipeline's perspective.
func (s *Service) setStatus(ctx context.Context, resumeID int64, status string) {
	if err := s.resumes.SetStatus(ctx, resumeID, status); err != nil {
		telemetry.Warn("resume.status_update_failed", map[string]any{
			"resume_id": resumeID,
			"status":    status,
			"err":       err.Error(),
		})
	}
}
