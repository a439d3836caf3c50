package analysis

import (
	"strings"
	"testing"
)

func TestRepair_CleanJSON(t *testing.T) {
	raw := `{"total_emails": 12, "classification": {"positive": 5, "negative": 3, "neutral": 2, "other": 2}, "highlights": ["billing complaints", "praise for support"], "summary": "Mostly routine."}`
	got := Repair(raw, 99)

	if got.TotalEmails != 12 {
		t.Fatalf("total_emails = %d, want 12", got.TotalEmails)
	}
	if got.Classification.Total() != 12 {
		t.Fatalf("classification total = %d, want 12", got.Classification.Total())
	}
	if len(got.Highlights) != 2 || got.Highlights[0].Text != "billing complaints" {
		t.Fatalf("highlights = %+v", got.Highlights)
	}
	if got.Summary != "Mostly routine." {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestRepair_ProseWrappedJSON(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n```json\n" +
		`{"total_emails": 3, "classification": {"positive": 1, "negative": 1, "neutral": 1, "other": 0}, "highlights": [], "summary": "ok"}` +
		"\n```\nLet me know if you need anything else."
	got := Repair(raw, 7)
	if got.TotalEmails != 3 {
		t.Fatalf("total_emails = %d, want 3", got.TotalEmails)
	}
	if got.Summary != "ok" {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestRepair_MissingFieldsDefaulted(t *testing.T) {
	got := Repair(`{"summary": "only a summary"}`, 42)
	if got.TotalEmails != 42 {
		t.Fatalf("total_emails = %d, want fallback 42", got.TotalEmails)
	}
	if got.Classification != (Classification{}) {
		t.Fatalf("classification should be all zero, got %+v", got.Classification)
	}
	if got.Highlights == nil || len(got.Highlights) != 0 {
		t.Fatalf("highlights should be empty non-nil, got %v", got.Highlights)
	}
	if got.Summary != "only a summary" {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestRepair_MalformedJSONFallsBack(t *testing.T) {
	raw := `{"total_emails": "not a number", "classification": ["wrong"]}`
	got := Repair(raw, 5)
	if got.TotalEmails != 5 {
		t.Fatalf("total_emails = %d, want fallback 5", got.TotalEmails)
	}
	if got.Summary == "" || !strings.Contains(got.Summary, "not a number") {
		t.Fatalf("summary should salvage raw text, got %q", got.Summary)
	}
}

func TestRepair_NoJSONAtAll(t *testing.T) {
	raw := "I cannot help with that request."
	got := Repair(raw, 8)
	if got.TotalEmails != 8 {
		t.Fatalf("total_emails = %d, want 8", got.TotalEmails)
	}
	if got.Summary != raw {
		t.Fatalf("summary = %q, want raw text", got.Summary)
	}
	if got.Highlights == nil || len(got.Highlights) != 0 {
		t.Fatalf("highlights should be empty non-nil")
	}
}

func TestRepair_EmptyInput(t *testing.T) {
	got := Repair("", 20)
	if got.TotalEmails != 20 || got.Summary != "" || len(got.Highlights) != 0 {
		t.Fatalf("unexpected fallback result: %+v", got)
	}
}

func TestRepair_SalvageTruncated(t *testing.T) {
	raw := strings.Repeat("x", 5000)
	got := Repair(raw, 1)
	if len(got.Summary) != 1000 {
		t.Fatalf("salvaged summary length = %d, want 1000", len(got.Summary))
	}
}

func TestRepair_NegativeCountsClamped(t *testing.T) {
	raw := `{"total_emails": -4, "classification": {"positive": -1, "negative": 2, "neutral": 0, "other": 0}, "highlights": [], "summary": ""}`
	got := Repair(raw, 10)
	if got.TotalEmails != 10 {
		t.Fatalf("negative total should fall back, got %d", got.TotalEmails)
	}
	if got.Classification.Positive != 0 || got.Classification.Negative != 2 {
		t.Fatalf("classification = %+v", got.Classification)
	}
}

func TestRepair_MixedHighlightShapes(t *testing.T) {
	raw := `{"total_emails": 2, "classification": {"positive": 2, "negative": 0, "neutral": 0, "other": 0},
		"highlights": ["plain string", {"text": "structured", "count": 3, "percentage": 50.0}, 17, ""],
		"summary": "s"}`
	got := Repair(raw, 0)
	if len(got.Highlights) != 2 {
		t.Fatalf("expected 2 usable highlights, got %+v", got.Highlights)
	}
	if got.Highlights[0].Text != "plain string" {
		t.Fatalf("highlight 0 = %+v", got.Highlights[0])
	}
	if got.Highlights[1].Count != 3 || got.Highlights[1].Percentage != 50.0 {
		t.Fatalf("highlight 1 = %+v", got.Highlights[1])
	}
}

func TestFallback(t *testing.T) {
	got := Fallback(50)
	if got.TotalEmails != 50 {
		t.Fatalf("total_emails = %d, want 50", got.TotalEmails)
	}
	if got.Classification.Total() != 0 || got.Summary != "" || len(got.Highlights) != 0 {
		t.Fatalf("fallback should be zeroed: %+v", got)
	}
}

func TestRepair_NegativeFallbackCount(t *testing.T) {
	got := Repair("garbage", -3)
	if got.TotalEmails != 0 {
		t.Fatalf("negative fallback clamps to 0, got %d", got.TotalEmails)
	}
}
