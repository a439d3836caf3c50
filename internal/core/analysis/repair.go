package analysis

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const (
	// salvageLen caps how much raw oracle text is kept as a fallback summary
	salvageLen = 1000

	// maxSummaryLen bounds the summary even when the oracle emitted valid JSON
	maxSummaryLen = 4000
)

// Repair extracts a well formed Result from raw oracle output.
//
// It locates the widest brace delimited substring (first '{' to last '}',
// tolerant of JSON wrapped in prose or code fences) and parses it. Missing
// fields are defaulted: total_emails from fallbackCount, classification to
// all zeroes, highlights to empty, summary to "". When no JSON-like substring
// exists or parsing fails, the whole raw text is salvaged into the summary.
//
// Repair is total: it never fails, whatever the input. This is the invariant
// that keeps the rest of the pipeline deterministic in the face of oracle
// misbehavior
func Repair(raw string, fallbackCount int) Result {
	if fallbackCount < 0 {
		fallbackCount = 0
	}

	if body, ok := braceSpan(raw); ok {
		var probe struct {
			TotalEmails    *int            `json:"total_emails"`
			Classification *Classification `json:"classification"`
			Highlights     []Highlight     `json:"highlights"`
			Summary        *string         `json:"summary"`
		}
		if err := json.Unmarshal([]byte(body), &probe); err == nil {
			out := Result{
				TotalEmails: fallbackCount,
				Highlights:  []Highlight{},
			}
			if probe.TotalEmails != nil && *probe.TotalEmails >= 0 {
				out.TotalEmails = *probe.TotalEmails
			}
			if probe.Classification != nil {
				out.Classification = probe.Classification.clamp()
			}
			for _, h := range probe.Highlights {
				if strings.TrimSpace(h.Text) == "" {
					continue
				}
				if h.Count < 0 {
					h.Count = 0
				}
				out.Highlights = append(out.Highlights, h)
			}
			if probe.Summary != nil {
				out.Summary = truncate(*probe.Summary, maxSummaryLen)
			}
			return out
		}
	}

	// no parseable JSON at all; keep the head of the raw answer so a
	// free-text response is not lost entirely
	return Result{
		TotalEmails: fallbackCount,
		Highlights:  []Highlight{},
		Summary:     truncate(raw, salvageLen),
	}
}

// Fallback is the degraded result used when the oracle call itself failed
// and there is no raw text to salvage
func Fallback(count int) Result {
	return Repair("", count)
}

// braceSpan returns the substring from the first '{' to the last '}'
func braceSpan(s string) (string, bool) {
	lo := strings.IndexByte(s, '{')
	hi := strings.LastIndexByte(s, '}')
	if lo < 0 || hi <= lo {
		return "", false
	}
	return s[lo : hi+1], true
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
