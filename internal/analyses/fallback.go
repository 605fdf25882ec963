package analyses

// FallbackResult is the deterministic result recorded when the model output
// cannot be parsed. All scores are zero.
func FallbackResult() AnalysisResult {
	section := func() FeedbackSection {
		return FeedbackSection{
			Score:        0,
			Strengths:    []string{},
			Improvements: []string{"Analysis temporarily unavailable. Please try uploading again."},
			Details:      "Analysis temporarily unavailable.",
		}
	}
	return AnalysisResult{
		OverallScore:   0,
		CategoryScores: CategoryScores{},
		ATSScore:       0,
		Feedback: Feedback{
			Impact:       section(),
			Presentation: section(),
			Competencies: section(),
		},
		LineByLineFeedback: []LineFeedback{},
		ATSCompatibility: ATSCompatibility{
			Score:           0,
			Issues:          []string{"Analysis temporarily unavailable."},
			Recommendations: []string{"Please try uploading your resume again."},
		},
		Recommendations: []string{
			"Please try uploading your resume again.",
			"If the problem persists, try a different file format.",
		},
	}
}
