package analysis

import (
	"fmt"
	"strings"
)

// batchCharBudget caps the rendered batch payload so one oversized mailbox
// cannot blow past the oracle's input limit
const batchCharBudget = 15000

// BatchInstruction is the role instruction for classify-and-summarize calls
const BatchInstruction = `You are an email analyst. You receive a numbered list of emails.
Classify each email as positive, negative, neutral or other, then summarize the set.
Respond with JSON only, no prose and no code fences, exactly this shape:
{"total_emails": <int>, "classification": {"positive": <int>, "negative": <int>, "neutral": <int>, "other": <int>}, "highlights": [<short strings>], "summary": <string>}`

// MergeInstruction is the role instruction for merge rounds
const MergeInstruction = `You are an email analyst. You receive several partial analysis reports as JSON.
Consolidate them into ONE report: sum total_emails, sum each classification count,
merge overlapping highlights (keeping count and percentage where present), and write a combined summary.
Respond with JSON only, no prose and no code fences, exactly this shape:
{"total_emails": <int>, "classification": {"positive": <int>, "negative": <int>, "neutral": <int>, "other": <int>}, "highlights": [{"text": <string>, "count": <int>, "percentage": <float>}], "summary": <string>}`

// RenderBatchPrompt renders one batch of records as the oracle payload,
// truncated to the batch character budget
func RenderBatchPrompt(records []Record) string {
	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Record %d (from: %s, subject: %s): %s", i+1, r.From, r.Subject, r.Body)
	}
	return truncate(sb.String(), batchCharBudget)
}

// RenderMergePrompt renders a group of partial results as the merge payload
func RenderMergePrompt(group []Result) string {
	var sb strings.Builder
	for i, res := range group {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Report %d: %s", i+1, res.JSON())
	}
	return sb.String()
}
