package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/mal4crypt/genova-health/internal/goal"
	"github.com/mal4crypt/genova-health/internal/metric"
)

const systemPrompt = `
You are a health assistant for a telehealth application.

Your role is to generate short, actionable wellness insights from a
user's recent health metrics and goals.

General rules:
1. Only comment on the data you are given. Never invent measurements.
2. Never diagnose conditions or recommend medication. For anything that
   looks concerning, recommend talking to a doctor.
3. Classify each insight with a "category" of "activity", "sleep" or
   "general".
4. Each insight must have:
   - "category": one of the categories above
   - "headline": one short sentence summarizing the observation
   - "detail": what in the data supports the observation
   - "recommendation": one concrete, realistic next step

Expected JSON format:

[
  {
    "category": "activity",
    "headline": "<short observation>",
    "detail": "<what the data shows>",
    "recommendation": "<one concrete next step>"
  }
]

Quality guidelines:
- Keep every field to at most two sentences.
- Prefer trends over single data points.
- Tie recommendations to the user's stated goals when possible.
- Always return pure, valid JSON with no text outside the JSON.
- If there is not enough data to say anything useful, return:
  [{"category": "general", "headline": "Not enough data yet", "detail": "Keep logging your metrics.", "recommendation": "Record your activity and sleep for a few more days."}]
`

func BuildUserPrompt(req InsightRequest, goals []*goal.FitnessGoal, metrics []*metric.HealthMetric) string {
	var b strings.Builder

	b.WriteString("Current goals:\n")
	if len(goals) == 0 {
		b.WriteString("- none\n")
	}
	for _, g := range goals {
		b.WriteString(fmt.Sprintf("- %q (%s): %.0f of %.0f, status %s\n",
			g.Title, g.Category, g.CurrentValue, g.TargetValue, g.Status))
	}

	b.WriteString("\nRecent metrics (newest first):\n")
	if len(metrics) == 0 {
		b.WriteString("- none\n")
	}
	for _, m := range metrics {
		b.WriteString(fmt.Sprintf("- %s: %.0f %s at %s\n",
			m.Type, m.Value, m.Unit, m.RecordedAt.Format(time.RFC3339)))
	}

	if req.Focus != "" {
		b.WriteString(fmt.Sprintf("\nFocus the insights on: %s\n", req.Focus))
	}
	if req.Question != "" {
		b.WriteString(fmt.Sprintf("\nThe user asked: %s\n", req.Question))
	}

	b.WriteString("\nGenerate up to 3 insights in the format specified in the system prompt.")
	return b.String()
}
