package analyses

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func sampleResult() AnalysisResult {
	var result AnalysisResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		panic(err)
	}
	return result
}

func TestFormatRecordExposesScoresAlias(t *testing.T) {
	rec := Record{
		ID:                3,
		ResumeID:          9,
		OverallScore:      80,
		ImpactScore:       78,
		PresentationScore: 82,
		CompetenciesScore: 80,
		ATSScore:          85,
		Result:            sampleResult(),
		OriginalFilename:  "resume.pdf",
	}

	got := FormatRecord(rec)
	if got.CategoryScores != got.Scores {
		t.Fatalf("scores alias diverged: categoryScores=%+v scores=%+v", got.CategoryScores, got.Scores)
	}

	// Both names must appear on the wire.
	encoded, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := wire["categoryScores"]; !ok {
		t.Fatal("categoryScores missing from wire shape")
	}
	if _, ok := wire["scores"]; !ok {
		t.Fatal("scores alias missing from wire shape")
	}
	if string(wire["categoryScores"]) != string(wire["scores"]) {
		t.Fatalf("wire alias mismatch: %s vs %s", wire["categoryScores"], wire["scores"])
	}
}

func TestFormatRecordScalarsAreAuthoritative(t *testing.T) {
	result := sampleResult()
	rec := Record{
		OverallScore:      70, // diverges from the blob on purpose
		ImpactScore:       71,
		PresentationScore: 72,
		CompetenciesScore: 73,
		ATSScore:          74,
		Result:            result,
	}

	got := FormatRecord(rec)
	if got.OverallScore != 70 || got.ATSScore != 74 {
		t.Fatalf("scalar columns must win over blob values: %+v", got)
	}
	if got.CategoryScores != (CategoryScores{Impact: 71, Presentation: 72, Competencies: 73}) {
		t.Fatalf("categoryScores = %+v", got.CategoryScores)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	result := sampleResult()

	stored, err := repo.CreateResult(context.Background(), Record{
		ResumeID:          1,
		UserID:            1,
		OverallScore:      result.OverallScore,
		ImpactScore:       result.CategoryScores.Impact,
		PresentationScore: result.CategoryScores.Presentation,
		CompetenciesScore: result.CategoryScores.Competencies,
		ATSScore:          result.ATSScore,
		Result:            result,
		OriginalFilename:  "resume.pdf",
		UploadDate:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateResult: %v", err)
	}

	loaded, err := repo.GetByID(context.Background(), stored.ID, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	got := FormatRecord(loaded)
	if got.OverallScore != result.OverallScore || got.ATSScore != result.ATSScore {
		t.Fatalf("score round trip mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Feedback, result.Feedback) {
		t.Fatal("feedback round trip mismatch")
	}
	if !reflect.DeepEqual(got.LineByLineFeedback, result.LineByLineFeedback) {
		t.Fatal("lineByLineFeedback round trip mismatch")
	}
	if !reflect.DeepEqual(got.Recommendations, result.Recommendations) {
		t.Fatal("recommendations round trip mismatch")
	}
}
