package llm

import "strings"

const systemPrompt = "You are a resume analysis engine. Respond with JSON only. No markdown. Never omit keys. Output must match the schema exactly."

const analysisTemplate = `Analyze the resume below and score it for a job seeker.

Scoring rules:
- All score fields are integers from 0 to 100.
- overallScore is the rounded mean of the three category scores.
- severity is one of "high", "medium" or "low".

Respond with a single JSON object matching this schema exactly:
{
  "overallScore": 0,
  "categoryScores": {"impact": 0, "presentation": 0, "competencies": 0},
  "atsScore": 0,
  "feedback": {
    "impact": {"score": 0, "strengths": [""], "improvements": [""], "details": ""},
    "presentation": {"score": 0, "strengths": [""], "improvements": [""], "details": ""},
    "competencies": {"score": 0, "strengths": [""], "improvements": [""], "details": ""}
  },
  "lineByLineFeedback": [
    {"section": "", "originalText": "", "feedback": "", "suggestion": "", "severity": "medium"}
  ],
  "atsCompatibility": {"score": 0, "issues": [""], "recommendations": [""]},
  "recommendations": [""]
}

Resume text:
{{RESUME_TEXT}}`

// BuildAnalysisPrompt embeds the resume text into the fixed scoring
// instruction. The resume text is the only variable segment.
func BuildAnalysisPrompt(resumeText string) string {
	body := strings.Replace(analysisTemplate, "{{RESUME_TEXT}}", resumeText, 1)
	return systemPrompt + "\n\n" + body
}
